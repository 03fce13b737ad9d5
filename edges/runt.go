// SPDX-License-Identifier: MIT

package edges

import (
	"fmt"

	"github.com/katalvlaran/lvledge/area"
	"github.com/katalvlaran/lvledge/levels"
	"go.uber.org/zap"
)

// ExtractRuntEdges splits the bracket [begin, end], known to hold a
// back-to-back runt pair, into its two edges.
//
// State levels are recomputed on a fresh copy of the bracket (configured by
// WithRuntLevelOptions). For a FallingRunt bracket the split uses the samples
// below the local Low level, for a RisingRunt bracket those above the local
// High level:
//
//	first = first such offset, or the second one if the first is 0
//	last  = last such offset, or the second-to-last if the last is the final offset
//
// The pair is ExtractEdge(t, begin, begin+first) followed by
// ExtractEdge(opposite of t, begin+last, end). Intermediate points use the
// global levels; only the split point sees the local ones. Resolution is
// single level: the halves are not re-split against the global thresholds.
//
// Errors:
//   - ErrEdgeType if t is not a runt type.
//   - ErrRange, ErrOrder as for ExtractEdge.
//   - levels errors if the bracket is too flat to yield local levels.
//   - ErrInvariant if the bracket has no usable split point.
func (x *Extractor) ExtractRuntEdges(t EdgeType, begin, end int) ([2]Edge, error) {
	var pair [2]Edge
	if !t.IsRunt() {
		return pair, fmt.Errorf("ExtractRuntEdges(%v): %w", t, ErrEdgeType)
	}
	if err := x.checkBracket("ExtractRuntEdges", begin, end); err != nil {
		return pair, err
	}

	first, last, err := x.splitPoints(t, begin, end)
	if err != nil {
		return pair, err
	}
	x.cfg.log.Debug("runt split", zap.Stringer("type", t),
		zap.Int("begin", begin), zap.Int("end", end),
		zap.Int("first", first), zap.Int("last", last))

	if pair[0], err = x.ExtractEdge(t, begin, begin+first); err != nil {
		return pair, err
	}
	if pair[1], err = x.ExtractEdge(t.opposite(), begin+last, end); err != nil {
		return pair, err
	}

	return pair, nil
}

// splitPoints returns the bracket-relative split offsets.
func (x *Extractor) splitPoints(t EdgeType, begin, end int) (first, last int, err error) {
	sub, err := x.sig.Slice(begin, end)
	if err != nil {
		return 0, 0, fmt.Errorf("ExtractRuntEdges(%d, %d): %w", begin, end, err)
	}
	opts := x.cfg.runtOpts
	local, _, err := levels.Compute(sub, &opts)
	if err != nil {
		return 0, 0, fmt.Errorf("ExtractRuntEdges(%d, %d): local levels: %w", begin, end, err)
	}
	idx, err := area.Build(sub, local)
	if err != nil {
		return 0, 0, fmt.Errorf("ExtractRuntEdges(%d, %d): %w", begin, end, err)
	}

	region := area.Low
	if t.IsRising() {
		region = area.High
	}
	occ, err := idx.Indices(region)
	if err != nil {
		return 0, 0, x.wrap(err)
	}

	first, last, ok := splitOffsets(occ, sub.Len())
	if !ok {
		return 0, 0, fmt.Errorf("ExtractRuntEdges(%v, %d, %d): occurrences %v: %w",
			t, begin, end, occ, ErrInvariant)
	}

	return first, last, nil
}

// splitOffsets applies the boundary rule to the sorted occurrence list of a
// bracket of length n. ok is false when no split with 0 < first ≤ last < n−1
// can be formed.
func splitOffsets(occ []int, n int) (first, last int, ok bool) {
	if len(occ) == 0 {
		return 0, 0, false
	}

	first = occ[0]
	if first == 0 {
		if len(occ) < 2 {
			return 0, 0, false
		}
		first = occ[1]
	}
	last = occ[len(occ)-1]
	if last == n-1 {
		if len(occ) < 2 {
			return 0, 0, false
		}
		last = occ[len(occ)-2]
	}
	if first <= 0 || last >= n-1 || first > last {
		return 0, 0, false
	}

	return first, last, true
}
