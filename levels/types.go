// SPDX-License-Identifier: MIT

package levels

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for levels operations.
var (
	// ErrConfig indicates invalid calculator parameters.
	ErrConfig = errors.New("levels: invalid configuration")

	// ErrOrder indicates state levels that violate
	// lowest ≤ low < low_runt < intermediate < high_runt < high ≤ highest.
	ErrOrder = errors.New("levels: state levels are not strictly ordered")

	// ErrNilSignal indicates a nil *signal.Signal argument.
	ErrNilSignal = errors.New("levels: signal is nil")
)

// Mode selects how a histogram half is reduced to one representative value.
type Mode int

const (
	// HistogramMode takes the center of the most populated bin (first on ties).
	HistogramMode Mode = iota

	// HistogramMean takes the count-weighted mean of the bin centers.
	HistogramMean
)

// String returns "mode" or "mean".
func (m Mode) String() string {
	switch m {
	case HistogramMode:
		return "mode"
	case HistogramMean:
		return "mean"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "mode"/"mean" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mode", "histogram-mode":
		return HistogramMode, nil
	case "mean", "histogram-mean":
		return HistogramMean, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrConfig)
}

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultNBins is the histogram bin count.
	DefaultNBins = 100

	// MinNBins is the smallest accepted bin count.
	MinNBins = 2

	DefaultHighRef         = 90.0
	DefaultHighRuntRef     = 70.0
	DefaultIntermediateRef = 50.0
	DefaultLowRuntRef      = 30.0
	DefaultLowRef          = 10.0

	// percent converts a reference into a fraction of the full range.
	percent = 100.0
)

// Refs holds the five percentage references, each in [0, 100] and strictly
// increasing from Low to High.
type Refs struct {
	High         float64 `yaml:"high"`
	HighRunt     float64 `yaml:"high_runt"`
	Intermediate float64 `yaml:"intermediate"`
	LowRunt      float64 `yaml:"low_runt"`
	Low          float64 `yaml:"low"`
}

// DefaultRefs returns 90/70/50/30/10.
func DefaultRefs() Refs {
	return Refs{
		High:         DefaultHighRef,
		HighRunt:     DefaultHighRuntRef,
		Intermediate: DefaultIntermediateRef,
		LowRunt:      DefaultLowRuntRef,
		Low:          DefaultLowRef,
	}
}

// Bounds is an explicit histogram range [Lower, Upper].
// Samples outside it are ignored; a sample equal to Upper lands in the last bin.
type Bounds struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// Options configures Compute.
//
// Fields:
//   - Mode   — HistogramMode or HistogramMean.
//   - NBins  — number of histogram bins, ≥ MinNBins.
//   - Bounds — explicit histogram range; nil means automatic
//     [min(v) − 1 ULP, max(v) + 1 ULP].
//   - Refs   — percentage references.
//   - Logger — debug sink; nil means no logging.
type Options struct {
	Mode   Mode
	NBins  int
	Bounds *Bounds
	Refs   Refs
	Logger *zap.Logger
}

// DefaultOptions returns HistogramMode, DefaultNBins bins, automatic bounds and DefaultRefs.
func DefaultOptions() Options {
	return Options{
		Mode:  HistogramMode,
		NBins: DefaultNBins,
		Refs:  DefaultRefs(),
	}
}

// StateLevels are the seven ordered thresholds derived from a histogram.
// It is a plain value: copy freely, never mutated by this package after Compute.
type StateLevels struct {
	Lowest       float64 `yaml:"lowest" json:"lowest"`
	Low          float64 `yaml:"low" json:"low"`
	LowRunt      float64 `yaml:"low_runt" json:"low_runt"`
	Intermediate float64 `yaml:"intermediate" json:"intermediate"`
	HighRunt     float64 `yaml:"high_runt" json:"high_runt"`
	High         float64 `yaml:"high" json:"high"`
	Highest      float64 `yaml:"highest" json:"highest"`
}

// Validate checks lowest ≤ low < low_runt < intermediate < high_runt < high ≤ highest.
// NaN in any field fails every comparison and is rejected as well.
func (lv StateLevels) Validate() error {
	ok := lv.Lowest <= lv.Low &&
		lv.Low < lv.LowRunt &&
		lv.LowRunt < lv.Intermediate &&
		lv.Intermediate < lv.HighRunt &&
		lv.HighRunt < lv.High &&
		lv.High <= lv.Highest
	if !ok {
		return fmt.Errorf("Validate: %+v: %w", lv, ErrOrder)
	}

	return nil
}

// Range returns Highest − Lowest, the full state-level span.
func (lv StateLevels) Range() float64 {
	return lv.Highest - lv.Lowest
}

// Histogram is the uniform histogram Compute derived the levels from.
// Centers[i] is the midpoint of bin i; Counts[i] its sample count.
type Histogram struct {
	Centers []float64 `yaml:"centers"`
	Counts  []float64 `yaml:"counts"`
	Lower   float64   `yaml:"lower"`
	Upper   float64   `yaml:"upper"`
}

// Occupied returns the first and last bins with a non-zero count.
// ok is false when every bin is empty.
func (h Histogram) Occupied() (first, last int, ok bool) {
	first, last = -1, -1
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	return first, last, first >= 0
}
