// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"
)

// Signal is an immutable sequence of (horizontal, vertical) sample pairs.
// The horizontal axis is strictly increasing and every value is finite.
// The zero value is not usable; construct with New or NewUniform.
type Signal struct {
	h []float64
	v []float64
}

// New constructs a Signal from equal-length horizontal and vertical arrays.
// Both inputs are deep-copied, so later mutation by the caller has no effect.
//
// Errors (checked in this order):
//   - ErrEmpty          if len(v) == 0.
//   - ErrLengthMismatch if len(h) != len(v).
//   - ErrNaNInf         if any value is NaN or ±Inf.
//   - ErrNotIncreasing  if h[i] >= h[i+1] for some i.
//
// Complexity: O(n) time and memory.
func New(h, v []float64) (*Signal, error) {
	if len(v) == 0 {
		return nil, ErrEmpty
	}
	if len(h) != len(v) {
		return nil, fmt.Errorf("New: len(h)=%d, len(v)=%d: %w", len(h), len(v), ErrLengthMismatch)
	}
	for i := range v {
		if isNonFinite(h[i]) || isNonFinite(v[i]) {
			return nil, fmt.Errorf("New: sample %d: %w", i, ErrNaNInf)
		}
		if i > 0 && h[i-1] >= h[i] {
			return nil, fmt.Errorf("New: h[%d]=%g, h[%d]=%g: %w", i-1, h[i-1], i, h[i], ErrNotIncreasing)
		}
	}

	s := &Signal{
		h: make([]float64, len(h)),
		v: make([]float64, len(v)),
	}
	copy(s.h, h)
	copy(s.v, v)

	return s, nil
}

// NewUniform constructs a Signal whose horizontal axis is t0, t0+dt, t0+2dt, ...
// dt must be finite and > 0 (otherwise ErrNotIncreasing).
// Complexity: O(n) time and memory.
func NewUniform(v []float64, t0, dt float64) (*Signal, error) {
	if isNonFinite(t0) || isNonFinite(dt) {
		return nil, fmt.Errorf("NewUniform: t0=%g, dt=%g: %w", t0, dt, ErrNaNInf)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("NewUniform: dt=%g: %w", dt, ErrNotIncreasing)
	}
	h := make([]float64, len(v))
	for i := range h {
		h[i] = t0 + float64(i)*dt
	}

	return New(h, v)
}

// Len returns the number of samples.
func (s *Signal) Len() int {
	return len(s.v)
}

// H returns the horizontal value of sample i. It panics like a slice index
// when i is outside [0, Len()); use At for a checked lookup.
func (s *Signal) H(i int) float64 {
	return s.h[i]
}

// V returns the vertical value of sample i. It panics like a slice index
// when i is outside [0, Len()); use At for a checked lookup.
func (s *Signal) V(i int) float64 {
	return s.v[i]
}

// At returns sample i or ErrRange.
func (s *Signal) At(i int) (h, v float64, err error) {
	if i < 0 || i >= len(s.v) {
		return 0, 0, fmt.Errorf("At(%d): len=%d: %w", i, len(s.v), ErrRange)
	}

	return s.h[i], s.v[i], nil
}

// HValues returns a copy of the horizontal axis.
func (s *Signal) HValues() []float64 {
	out := make([]float64, len(s.h))
	copy(out, s.h)

	return out
}

// VValues returns a copy of the vertical axis.
func (s *Signal) VValues() []float64 {
	out := make([]float64, len(s.v))
	copy(out, s.v)

	return out
}

// Slice returns a new Signal holding samples begin..end inclusive.
// The result owns its storage; nothing is shared with s.
//
// Errors:
//   - ErrRange if begin or end is outside [0, Len()) or begin > end.
//
// Complexity: O(end-begin) time and memory.
func (s *Signal) Slice(begin, end int) (*Signal, error) {
	n := len(s.v)
	if begin < 0 || begin >= n || end < 0 || end >= n || begin > end {
		return nil, fmt.Errorf("Slice(%d, %d): len=%d: %w", begin, end, n, ErrRange)
	}
	sub := &Signal{
		h: make([]float64, end-begin+1),
		v: make([]float64, end-begin+1),
	}
	copy(sub.h, s.h[begin:end+1])
	copy(sub.v, s.v[begin:end+1])

	return sub, nil
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
