// SPDX-License-Identifier: MIT

package edges

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for edges operations.
//
// ErrInvariant is never caused by bad input: it reports that a lookup the
// state machine relies on (e.g. "a High sample precedes this Low sample")
// came back empty. Treat it as a bug report, not a validation failure.
var (
	// ErrRange indicates a begin/end index outside [0, Len()).
	ErrRange = errors.New("edges: index out of range")

	// ErrOrder indicates begin ≥ end, or state levels that are not strictly ordered.
	ErrOrder = errors.New("edges: invalid ordering")

	// ErrEmpty indicates an operation on an empty edge list.
	ErrEmpty = errors.New("edges: no edges")

	// ErrEdgeType indicates an edge type not accepted by the operation
	// (e.g. a non-runt type passed to ExtractRuntEdges).
	ErrEdgeType = errors.New("edges: unsupported edge type")

	// ErrWhich indicates an unknown edge point selector.
	ErrWhich = errors.New("edges: unknown edge point")

	// ErrPolicy indicates an unknown intermediate point policy name.
	ErrPolicy = errors.New("edges: unknown intermediate point policy")

	// ErrNilSignal indicates a nil *signal.Signal.
	ErrNilSignal = errors.New("edges: signal is nil")

	// ErrInvariant indicates an internal consistency failure of the extractor.
	ErrInvariant = errors.New("edges: internal invariant violated")
)

// EdgeType classifies a transition.
type EdgeType int

const (
	// Falling is a complete High → Low transition.
	Falling EdgeType = iota
	// FallingRunt leaves High but turns back before reaching Low.
	FallingRunt
	// Rising is a complete Low → High transition.
	Rising
	// RisingRunt leaves Low but turns back before reaching High.
	RisingRunt
)

// String returns the type name.
func (t EdgeType) String() string {
	switch t {
	case Falling:
		return "Falling"
	case FallingRunt:
		return "FallingRunt"
	case Rising:
		return "Rising"
	case RisingRunt:
		return "RisingRunt"
	default:
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
}

// MarshalText renders the type by name (YAML/JSON output).
func (t EdgeType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(t), ErrEdgeType)
	}

	return []byte(t.String()), nil
}

// IsRunt reports whether t is FallingRunt or RisingRunt.
func (t EdgeType) IsRunt() bool {
	return t == FallingRunt || t == RisingRunt
}

// IsRising reports whether t moves upward (Rising or RisingRunt).
func (t EdgeType) IsRising() bool {
	return t == Rising || t == RisingRunt
}

// opposite returns the type of the same kind with reversed polarity.
func (t EdgeType) opposite() EdgeType {
	switch t {
	case Falling:
		return Rising
	case Rising:
		return Falling
	case FallingRunt:
		return RisingRunt
	default:
		return FallingRunt
	}
}

func (t EdgeType) valid() bool {
	return t >= Falling && t <= RisingRunt
}

// IntPointPolicy selects which sample becomes an edge's intermediate point.
type IntPointPolicy int

const (
	// Nearest picks, among begin, end and the samples bracketing the
	// intermediate crossing, the one closest to the intermediate level.
	Nearest IntPointPolicy = iota
	// ForceBeginOnFallingElseEnd uses begin for falling edges, end for rising ones.
	ForceBeginOnFallingElseEnd
	// ForceEndOnFallingElseBegin uses end for falling edges, begin for rising ones.
	ForceEndOnFallingElseBegin
)

// String returns the policy name.
func (p IntPointPolicy) String() string {
	switch p {
	case Nearest:
		return "nearest"
	case ForceBeginOnFallingElseEnd:
		return "begin-on-falling"
	case ForceEndOnFallingElseBegin:
		return "end-on-falling"
	default:
		return fmt.Sprintf("IntPointPolicy(%d)", int(p))
	}
}

// ParseIntPointPolicy maps the String forms (case-insensitive) to a policy.
func ParseIntPointPolicy(s string) (IntPointPolicy, error) {
	for _, p := range []IntPointPolicy{Nearest, ForceBeginOnFallingElseEnd, ForceEndOnFallingElseBegin} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("ParseIntPointPolicy(%q): %w", s, ErrPolicy)
}

func (p IntPointPolicy) valid() bool {
	return p >= Nearest && p <= ForceEndOnFallingElseBegin
}

// Point is one sample of the signal referenced by an edge.
type Point struct {
	Index int     `yaml:"index" json:"index"`
	H     float64 `yaml:"h" json:"h"`
	V     float64 `yaml:"v" json:"v"`
}

// Edge is one detected transition. Begin.Index < End.Index and
// Begin.Index ≤ Intermediate.Index ≤ End.Index. Edges carry copies of the
// sample values and hold no reference to the signal.
type Edge struct {
	Type         EdgeType `yaml:"type" json:"type"`
	Begin        Point    `yaml:"begin" json:"begin"`
	Intermediate Point    `yaml:"intermediate" json:"intermediate"`
	End          Point    `yaml:"end" json:"end"`
}

// Duration returns End.H − Begin.H.
func (e Edge) Duration() float64 {
	return e.End.H - e.Begin.H
}

// IsRunt reports whether the edge is half of a runt pair.
func (e Edge) IsRunt() bool {
	return e.Type.IsRunt()
}

// IsRising reports whether the edge moves upward.
func (e Edge) IsRising() bool {
	return e.Type.IsRising()
}

// Which selects one of the three points of an edge.
type Which int

const (
	// Begin selects Edge.Begin.
	Begin Which = iota
	// Intermediate selects Edge.Intermediate.
	Intermediate
	// End selects Edge.End.
	End
)

// ParseWhich maps "begin", "intermediate" or "end" to a Which.
func ParseWhich(s string) (Which, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "begin":
		return Begin, nil
	case "intermediate", "int":
		return Intermediate, nil
	case "end":
		return End, nil
	}

	return 0, fmt.Errorf("ParseWhich(%q): %w", s, ErrWhich)
}
