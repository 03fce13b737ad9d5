// SPDX-License-Identifier: MIT

package area

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/signal"
)

// Index holds, for every Region, the ascending sample indices that satisfy
// its predicate. It is read-only once built and safe for concurrent queries.
type Index struct {
	n       int
	regions [numRegions][]int
}

// Build scans sig once and assigns every sample to its regions.
// lv is not validated here; callers that need the ordering invariant check
// lv.Validate first.
// Complexity: O(n) time and memory.
func Build(sig *signal.Signal, lv levels.StateLevels) (*Index, error) {
	if sig == nil {
		return nil, ErrNilSignal
	}
	idx := &Index{n: sig.Len()}
	for i := 0; i < idx.n; i++ {
		v := sig.V(i)
		switch {
		case v > lv.High:
			idx.add(High, i)
		case v > lv.Intermediate:
			idx.add(IntHigh, i)
		case v >= lv.Low:
			idx.add(IntLow, i)
		default:
			idx.add(Low, i)
		}
		if v >= lv.LowRunt && v <= lv.High {
			idx.add(RuntHigh, i)
		}
		if v <= lv.HighRunt && v >= lv.Low {
			idx.add(RuntLow, i)
		}
	}

	return idx, nil
}

// add appends i to region r. Indices arrive in ascending order from Build.
func (x *Index) add(r Region, i int) {
	x.regions[r] = append(x.regions[r], i)
}

// Len returns the number of samples the index was built from.
func (x *Index) Len() int {
	return x.n
}

// Indices returns a copy of the sorted indices of region r.
func (x *Index) Indices(r Region) ([]int, error) {
	if !r.valid() {
		return nil, fmt.Errorf("Indices(%v): %w", r, ErrRegion)
	}
	out := make([]int, len(x.regions[r]))
	copy(out, x.regions[r])

	return out, nil
}

// Contains reports whether sample i belongs to region r.
// Complexity: O(log n).
func (x *Index) Contains(r Region, i int) bool {
	if !r.valid() {
		return false
	}
	arr := x.regions[r]
	pos := sort.SearchInts(arr, i)

	return pos < len(arr) && arr[pos] == i
}

// FirstIn returns the smallest index i of region r with i ≥ begin.
// ok is false when no such index exists.
// Errors: ErrRange if begin ∉ [0, Len()); ErrRegion for an unknown region.
func (x *Index) FirstIn(r Region, begin int) (i int, ok bool, err error) {
	if err = x.check("FirstIn", r, begin); err != nil {
		return 0, false, err
	}
	arr := x.regions[r]
	pos := sort.SearchInts(arr, begin)
	if pos == len(arr) {
		return 0, false, nil
	}

	return arr[pos], true, nil
}

// FirstInRange returns the smallest index i of region r with begin ≤ i < end.
// Errors: ErrRange if begin or end ∉ [0, Len()); ErrRegion for an unknown region.
func (x *Index) FirstInRange(r Region, begin, end int) (i int, ok bool, err error) {
	if err = x.check("FirstInRange", r, end); err != nil {
		return 0, false, err
	}
	i, ok, err = x.FirstIn(r, begin)
	if err != nil || !ok || i >= end {
		return 0, false, err
	}

	return i, true, nil
}

// LastIn returns the largest index i of region r with i < end.
// Errors: ErrRange if end ∉ [0, Len()); ErrRegion for an unknown region.
func (x *Index) LastIn(r Region, end int) (i int, ok bool, err error) {
	if err = x.check("LastIn", r, end); err != nil {
		return 0, false, err
	}
	arr := x.regions[r]
	pos := sort.SearchInts(arr, end) // first element ≥ end
	if pos == 0 {
		return 0, false, nil
	}

	return arr[pos-1], true, nil
}

// LastInRange returns the largest index i of region r with begin ≤ i < end.
// Errors: ErrRange if begin or end ∉ [0, Len()); ErrRegion for an unknown region.
func (x *Index) LastInRange(r Region, end, begin int) (i int, ok bool, err error) {
	if err = x.check("LastInRange", r, begin); err != nil {
		return 0, false, err
	}
	i, ok, err = x.LastIn(r, end)
	if err != nil || !ok || i < begin {
		return 0, false, err
	}

	return i, true, nil
}

// check validates the region and one window bound.
func (x *Index) check(op string, r Region, bound int) error {
	if !r.valid() {
		return fmt.Errorf("%s(%v): %w", op, r, ErrRegion)
	}
	if bound < 0 || bound >= x.n {
		return fmt.Errorf("%s(%v, %d): len=%d: %w", op, r, bound, x.n, ErrRange)
	}

	return nil
}
