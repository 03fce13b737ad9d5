// SPDX-License-Identifier: MIT
// Package: lvledge/pulsegen
//
// trapezoid.go — deterministic trapezoidal pulse-train generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible 1-D pulse train for tests, demos and fixtures.
//   • Shape: low plateau → linear rise → high plateau → linear fall, repeated.
//   • Optional dips inside high plateaus and additive Gaussian noise.
//
// Determinism & testing:
//   • Ramp sample k of r is low + (k+1)·(high−low)/r, so integer levels and
//     ramp lengths that divide the span produce exact values.

package pulsegen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvledge/signal"
)

// ErrBadSize indicates periods < 1.
var ErrBadSize = errors.New("pulsegen: periods must be ≥ 1")

// Trapezoid returns the pulse train produced by TrapezoidValues as a Signal
// on the configured horizontal grid.
func Trapezoid(periods int, opts ...Option) (*signal.Signal, error) {
	cfg := newConfig(opts...)
	v, err := generate(periods, cfg)
	if err != nil {
		return nil, err
	}

	return signal.NewUniform(v, cfg.start, cfg.interval)
}

// TrapezoidValues returns periods repetitions of
// [low × lowN, rise × riseN, high × highN, fall × fallN].
//
// Each rising ramp ends exactly on high, each falling ramp exactly on low.
//
// Errors:
//   - ErrBadSize if periods < 1.
//
// Complexity: O(periods · period length) time and memory.
func TrapezoidValues(periods int, opts ...Option) ([]float64, error) {
	return generate(periods, newConfig(opts...))
}

// generate fills all samples in a single pass.
func generate(periods int, cfg config) ([]float64, error) {
	if periods < 1 {
		return nil, fmt.Errorf("Trapezoid(%d): %w", periods, ErrBadSize)
	}

	span := cfg.high - cfg.low
	periodLen := cfg.lowN + cfg.riseN + cfg.highN + cfg.fallN
	out := make([]float64, 0, periods*periodLen)

	for p := 0; p < periods; p++ {
		for k := 0; k < cfg.lowN; k++ {
			out = append(out, cfg.low)
		}
		for k := 0; k < cfg.riseN; k++ {
			out = append(out, cfg.low+float64(k+1)*span/float64(cfg.riseN))
		}
		plateau := len(out)
		for k := 0; k < cfg.highN; k++ {
			out = append(out, cfg.high)
		}
		for _, d := range cfg.dips {
			if d.period != p {
				continue
			}
			for k := d.offset; k < d.offset+d.width && k < cfg.highN; k++ {
				out[plateau+k] = cfg.low + d.fraction*span
			}
		}
		for k := 0; k < cfg.fallN; k++ {
			out = append(out, cfg.high-float64(k+1)*span/float64(cfg.fallN))
		}
	}

	if cfg.sigma > 0 {
		for i := range out {
			out[i] += cfg.sigma * cfg.rng.NormFloat64()
		}
	}

	return out, nil
}
