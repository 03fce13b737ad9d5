// SPDX-License-Identifier: MIT

package edges

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvledge/area"
	"gonum.org/v1/gonum/floats"
)

// ExtractEdge builds one edge of type t spanning [begin, end] and picks its
// intermediate point according to the configured IntPointPolicy.
//
// With Nearest, the candidates are, in this fixed order:
//
//	begin, end, A, B
//
// where A is the last sample before end in the near-high intermediate region
// (IntHigh for falling edges, IntLow for rising ones) and B the first sample
// after A (or after begin when A is missing) in the other intermediate
// region. The winner is the candidate closest to the intermediate level;
// ties go to the earlier position in the list, not the lower index. Missing
// candidates get an infinite distance, so the result always lies in
// [begin, end] even when an overshooting sample is farther than the full
// state-level range from the intermediate level.
//
// Errors:
//   - ErrRange if begin or end ∉ [0, Len()).
//   - ErrOrder if begin ≥ end.
//   - ErrEdgeType for an unknown type.
func (x *Extractor) ExtractEdge(t EdgeType, begin, end int) (Edge, error) {
	if err := x.checkBracket("ExtractEdge", begin, end); err != nil {
		return Edge{}, err
	}
	if !t.valid() {
		return Edge{}, fmt.Errorf("ExtractEdge(%v): %w", t, ErrEdgeType)
	}

	mid, err := x.intermediate(t, begin, end)
	if err != nil {
		return Edge{}, err
	}

	return Edge{
		Type:         t,
		Begin:        x.point(begin),
		Intermediate: x.point(mid),
		End:          x.point(end),
	}, nil
}

// intermediate resolves the intermediate index of a validated bracket.
func (x *Extractor) intermediate(t EdgeType, begin, end int) (int, error) {
	switch x.cfg.policy {
	case ForceBeginOnFallingElseEnd:
		if t.IsRising() {
			return end, nil
		}
		return begin, nil
	case ForceEndOnFallingElseBegin:
		if t.IsRising() {
			return begin, nil
		}
		return end, nil
	}

	nearHigh, nearLow := area.IntHigh, area.IntLow
	if t.IsRising() {
		nearHigh, nearLow = area.IntLow, area.IntHigh
	}

	a, aOK, err := x.idx.LastInRange(nearHigh, end, begin)
	if err != nil {
		return 0, x.wrap(err)
	}
	from := begin
	if aOK {
		from = a
	}
	b, bOK, err := x.idx.FirstInRange(nearLow, from, end)
	if err != nil {
		return 0, x.wrap(err)
	}

	candidates := [4]int{begin, end, a, b}
	present := [4]bool{true, true, aOK, bOK}
	dist := make([]float64, len(candidates))
	for k, i := range candidates {
		if !present[k] {
			dist[k] = math.Inf(1)
			continue
		}
		dist[k] = math.Abs(x.sig.V(i) - x.lv.Intermediate)
	}

	// MinIdx returns the first minimum, which is the list-order tie-break.
	return candidates[floats.MinIdx(dist)], nil
}

// checkBracket validates 0 ≤ begin < end < Len().
func (x *Extractor) checkBracket(op string, begin, end int) error {
	n := x.sig.Len()
	if begin < 0 || begin >= n || end < 0 || end >= n {
		return fmt.Errorf("%s(%d, %d): len=%d: %w", op, begin, end, n, ErrRange)
	}
	if begin >= end {
		return fmt.Errorf("%s(%d, %d): %w", op, begin, end, ErrOrder)
	}

	return nil
}

func (x *Extractor) point(i int) Point {
	return Point{Index: i, H: x.sig.H(i), V: x.sig.V(i)}
}
