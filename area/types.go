// SPDX-License-Identifier: MIT

package area

import (
	"errors"
	"fmt"
)

// Sentinel errors for area operations.
var (
	// ErrRange indicates a window bound outside [0, Len()).
	ErrRange = errors.New("area: index out of range")

	// ErrRegion indicates an unknown Region value.
	ErrRegion = errors.New("area: unknown region")

	// ErrNilSignal indicates a nil *signal.Signal passed to Build.
	ErrNilSignal = errors.New("area: signal is nil")
)

// Region names one amplitude predicate over the state levels.
type Region int

const (
	// High holds samples strictly above the high level.
	High Region = iota
	// IntHigh holds samples in (intermediate, high].
	IntHigh
	// IntLow holds samples in [low, intermediate].
	IntLow
	// Low holds samples strictly below the low level.
	Low
	// RuntHigh holds samples in [low_runt, high].
	RuntHigh
	// RuntLow holds samples in [low, high_runt].
	RuntLow

	numRegions
)

// Regions lists every Region in declaration order.
func Regions() []Region {
	return []Region{High, IntHigh, IntLow, Low, RuntHigh, RuntLow}
}

// String returns the region name.
func (r Region) String() string {
	switch r {
	case High:
		return "High"
	case IntHigh:
		return "IntHigh"
	case IntLow:
		return "IntLow"
	case Low:
		return "Low"
	case RuntHigh:
		return "RuntHigh"
	case RuntLow:
		return "RuntLow"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// valid reports whether r is one of the six declared regions.
func (r Region) valid() bool {
	return r >= High && r < numRegions
}
