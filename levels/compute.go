// SPDX-License-Identifier: MIT

package levels

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvledge/signal"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// degenerateHalfWidth widens a zero-width explicit range [a, a] to [a−0.5, a+0.5].
const degenerateHalfWidth = 0.5

// Compute derives StateLevels from the histogram of sig's vertical values.
//
// Algorithm Outline:
//  1. Resolve bounds: opts.Bounds, or [min(v) − 1 ULP, max(v) + 1 ULP] so the
//     extremes always fall inside the histogram.
//  2. Build a uniform histogram of opts.NBins bins over the bounds.
//  3. Locate the first and last non-empty bins (0-based): lo, hi.
//  4. Split [lo, hi] by index: mid = lo + (hi−lo)/2; lower half = [lo, mid],
//     upper half = [mid, hi]. The middle bin belongs to both.
//  5. Reduce each half to one value per opts.Mode: lowest (lower half) and
//     highest (upper half).
//  6. full = |highest − lowest|; every other level = lowest + ref/100 · full.
//
// Errors:
//   - ErrNilSignal if sig is nil.
//   - ErrConfig    if refs are outside [0, 100] or not strictly increasing
//     (Low < LowRunt < Intermediate < HighRunt < High), Bounds are
//     non-finite or Lower > Upper, NBins < MinNBins, Mode is unknown, or no
//     sample falls inside Bounds.
//   - ErrOrder     if the resulting levels are not strictly ordered, which
//     happens when the full range is zero (a flat signal).
//
// Complexity:
//
//	Time   = O(n log n + nbins)
//	Memory = O(n + nbins)
func Compute(sig *signal.Signal, opts *Options) (StateLevels, Histogram, error) {
	if sig == nil {
		return StateLevels{}, Histogram{}, ErrNilSignal
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return StateLevels{}, Histogram{}, err
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	v := sig.VValues()
	lower, upper := resolveBounds(v, o.Bounds)
	hist := buildHistogram(v, lower, upper, o.NBins)

	lo, hi, ok := hist.Occupied()
	if !ok {
		return StateLevels{}, hist, fmt.Errorf("Compute: no sample inside [%g, %g]: %w", lower, upper, ErrConfig)
	}
	mid := lo + (hi-lo)/2

	lowest := representative(o.Mode, hist.Centers[lo:mid+1], hist.Counts[lo:mid+1])
	highest := representative(o.Mode, hist.Centers[mid:hi+1], hist.Counts[mid:hi+1])
	full := math.Abs(highest - lowest)

	lv := StateLevels{
		Lowest:       lowest,
		Low:          lowest + o.Refs.Low/percent*full,
		LowRunt:      lowest + o.Refs.LowRunt/percent*full,
		Intermediate: lowest + o.Refs.Intermediate/percent*full,
		HighRunt:     lowest + o.Refs.HighRunt/percent*full,
		High:         lowest + o.Refs.High/percent*full,
		Highest:      highest,
	}
	if err := lv.Validate(); err != nil {
		return StateLevels{}, hist, fmt.Errorf("Compute: %w", err)
	}

	log.Debug("state levels computed",
		zap.Stringer("mode", o.Mode),
		zap.Int("nbins", o.NBins),
		zap.Int("first_bin", lo),
		zap.Int("last_bin", hi),
		zap.Int("mid_bin", mid),
		zap.Float64("lowest", lv.Lowest),
		zap.Float64("intermediate", lv.Intermediate),
		zap.Float64("highest", lv.Highest),
	)

	return lv, hist, nil
}

// validateOptions enforces the calculator preconditions; every failure is ErrConfig.
func validateOptions(o Options) error {
	if o.Mode != HistogramMode && o.Mode != HistogramMean {
		return fmt.Errorf("Compute: unknown mode %v: %w", o.Mode, ErrConfig)
	}
	if o.NBins < MinNBins {
		return fmt.Errorf("Compute: nbins=%d, need ≥ %d: %w", o.NBins, MinNBins, ErrConfig)
	}
	r := o.Refs
	for _, ref := range []float64{r.Low, r.LowRunt, r.Intermediate, r.HighRunt, r.High} {
		if !(ref >= 0 && ref <= percent) {
			return fmt.Errorf("Compute: reference %g outside [0, 100]: %w", ref, ErrConfig)
		}
	}
	if !(r.Low < r.LowRunt && r.LowRunt < r.Intermediate && r.Intermediate < r.HighRunt && r.HighRunt < r.High) {
		return fmt.Errorf("Compute: references %+v not strictly increasing: %w", r, ErrConfig)
	}
	if b := o.Bounds; b != nil {
		if isNonFinite(b.Lower) || isNonFinite(b.Upper) {
			return fmt.Errorf("Compute: bounds %+v not finite: %w", *b, ErrConfig)
		}
		if b.Lower > b.Upper {
			return fmt.Errorf("Compute: bounds %+v reversed: %w", *b, ErrConfig)
		}
	}

	return nil
}

// resolveBounds returns the explicit bounds or one ULP outside the data extremes.
func resolveBounds(v []float64, b *Bounds) (lower, upper float64) {
	if b != nil {
		lower, upper = b.Lower, b.Upper
		if lower == upper {
			lower -= degenerateHalfWidth
			upper += degenerateHalfWidth
		}

		return lower, upper
	}

	return math.Nextafter(floats.Min(v), math.Inf(-1)), math.Nextafter(floats.Max(v), math.Inf(1))
}

// buildHistogram bins the samples of v that lie in [lower, upper] into nbins
// equal-width bins. The last bin is closed on the right.
// v is consumed (filtered and sorted in place).
func buildHistogram(v []float64, lower, upper float64, nbins int) Histogram {
	dividers := make([]float64, nbins+1)
	floats.Span(dividers, lower, upper)

	centers := make([]float64, nbins)
	for i := range centers {
		centers[i] = (dividers[i] + dividers[i+1]) / 2
	}

	inside := v[:0]
	for _, x := range v {
		if x >= lower && x <= upper {
			inside = append(inside, x)
		}
	}
	sort.Float64s(inside)

	// stat.Histogram bins half-open [d_i, d_i+1); nudge the top divider so a
	// sample equal to upper is counted in the last bin.
	dividers[nbins] = math.Nextafter(upper, math.Inf(1))
	counts := stat.Histogram(nil, dividers, inside, nil)

	return Histogram{
		Centers: centers,
		Counts:  counts,
		Lower:   lower,
		Upper:   upper,
	}
}

// representative reduces one histogram half to a single amplitude.
func representative(mode Mode, centers, counts []float64) float64 {
	if mode == HistogramMean {
		return stat.Mean(centers, counts)
	}

	return centers[floats.MaxIdx(counts)]
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
