// SPDX-License-Identifier: MIT
// Package: lvledge/pulsegen
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Trapezoid itself never panics.
//   • Later options override earlier ones, except WithDip which accumulates.

package pulsegen

import (
	"math"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultLow      = 0.0
	defaultHigh     = 100.0
	defaultSegment  = 10 // samples per segment (low, rise, high, fall)
	defaultStart    = 0.0
	defaultInterval = 1.0
	defaultSigma    = 0.0
	defaultSeed     = int64(1)
)

// Option customizes a generator call by mutating a config before generation.
type Option func(*config)

// dip replaces width samples of the high plateau of one period with a value
// at fraction of the low→high span.
type dip struct {
	period   int
	offset   int
	width    int
	fraction float64
}

// config aggregates all generator knobs. Passed by value once resolved.
type config struct {
	low, high float64

	// segment lengths in samples
	lowN, riseN, highN, fallN int

	start, interval float64

	sigma float64
	rng   *rand.Rand
	seed  int64

	dips []dip
}

// newConfig applies opts over the defaults in order.
func newConfig(opts ...Option) config {
	cfg := config{
		low:      defaultLow,
		high:     defaultHigh,
		lowN:     defaultSegment,
		riseN:    defaultSegment,
		highN:    defaultSegment,
		fallN:    defaultSegment,
		start:    defaultStart,
		interval: defaultInterval,
		sigma:    defaultSigma,
		seed:     defaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// WithLevels sets the low and high plateau amplitudes. Panics unless both
// are finite and low < high.
func WithLevels(low, high float64) Option {
	if !isFinite(low) || !isFinite(high) || low >= high {
		panic("pulsegen: WithLevels requires finite low < high")
	}
	return func(c *config) {
		c.low, c.high = low, high
	}
}

// WithSegments sets the sample counts of the low plateau, rising ramp, high
// plateau and falling ramp. Panics if any count is < 1.
func WithSegments(low, rise, high, fall int) Option {
	if low < 1 || rise < 1 || high < 1 || fall < 1 {
		panic("pulsegen: WithSegments requires every segment ≥ 1 sample")
	}
	return func(c *config) {
		c.lowN, c.riseN, c.highN, c.fallN = low, rise, high, fall
	}
}

// WithDip replaces width samples of the high plateau of the given period
// (0-based), starting offset samples into the plateau, with
// low + fraction·(high−low). Dips that do not fit the plateau are clipped.
// Panics on negative period/offset, width < 1 or fraction outside [0, 1].
func WithDip(period, offset, width int, fraction float64) Option {
	if period < 0 || offset < 0 || width < 1 || !(fraction >= 0 && fraction <= 1) {
		panic("pulsegen: WithDip invalid arguments")
	}
	return func(c *config) {
		c.dips = append(c.dips, dip{period: period, offset: offset, width: width, fraction: fraction})
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma ≥ 0.
func WithNoise(sigma float64) Option {
	if !isFinite(sigma) || sigma < 0 {
		panic("pulsegen: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithSeed seeds the noise source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSampleInterval sets the horizontal axis to start, start+dt, ...
// Panics unless start is finite and dt is finite and > 0.
func WithSampleInterval(start, dt float64) Option {
	if !isFinite(start) || !isFinite(dt) || dt <= 0 {
		panic("pulsegen: WithSampleInterval requires finite start and dt > 0")
	}
	return func(c *config) {
		c.start, c.interval = start, dt
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
