// SPDX-License-Identifier: MIT

// Package signal holds a sampled, analog-style waveform as two equal-length
// numeric arrays: a horizontal axis (time, position, ...) and a vertical axis
// (amplitude).
//
// What:
//
//   - Signal is an immutable value: New deep-copies its inputs.
//   - The horizontal axis is strictly increasing; every value is finite.
//   - Slice returns a fresh, owned sub-signal (inclusive bounds), so callers
//     that analyze sub-ranges never share mutable scratch state.
//
// Why:
//
//   - levels, area and edges borrow a *Signal read-only; validating once here
//     keeps the algorithms free of repeated shape/NaN checks.
//
// Complexity:
//
//   - New, NewUniform, Slice: O(n) time and memory.
//   - Len, H, V, At:          O(1).
//
// Errors:
//
//   - ErrEmpty:          no samples.
//   - ErrLengthMismatch: horizontal and vertical arrays differ in length.
//   - ErrNotIncreasing:  horizontal axis is not strictly increasing.
//   - ErrNaNInf:         a NaN or ±Inf sample was supplied.
//   - ErrRange:          an index outside [0, Len()).
package signal
