// SPDX-License-Identifier: MIT

package signal

import "errors"

var (
	// ErrEmpty indicates that a signal with zero samples was requested.
	ErrEmpty = errors.New("signal: at least one sample is required")

	// ErrLengthMismatch indicates horizontal and vertical arrays of different length.
	ErrLengthMismatch = errors.New("signal: horizontal and vertical lengths differ")

	// ErrNotIncreasing indicates that the horizontal axis is not strictly increasing.
	ErrNotIncreasing = errors.New("signal: horizontal axis must be strictly increasing")

	// ErrNaNInf indicates a NaN or ±Inf value on either axis.
	ErrNaNInf = errors.New("signal: NaN or Inf encountered")

	// ErrRange indicates an index outside [0, Len()).
	ErrRange = errors.New("signal: index out of range")
)
