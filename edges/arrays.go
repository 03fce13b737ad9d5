// SPDX-License-Identifier: MIT

package edges

import "fmt"

// ToArrays projects one point of every edge into parallel horizontal and
// vertical arrays, len(h) == len(v) == len(edges). Values are not
// deduplicated: adjacent edges sharing a sample appear twice.
//
// Errors: ErrEmpty for an empty list; ErrWhich for an unknown selector.
func ToArrays(list []Edge, which Which) (h, v []float64, err error) {
	if len(list) == 0 {
		return nil, nil, fmt.Errorf("ToArrays: %w", ErrEmpty)
	}

	var pick func(Edge) Point
	switch which {
	case Begin:
		pick = func(e Edge) Point { return e.Begin }
	case Intermediate:
		pick = func(e Edge) Point { return e.Intermediate }
	case End:
		pick = func(e Edge) Point { return e.End }
	default:
		return nil, nil, fmt.Errorf("ToArrays(%d): %w", int(which), ErrWhich)
	}

	h = make([]float64, len(list))
	v = make([]float64, len(list))
	for i, e := range list {
		p := pick(e)
		h[i], v[i] = p.H, p.V
	}

	return h, v, nil
}

// Count tallies edges by type.
func Count(list []Edge) map[EdgeType]int {
	out := make(map[EdgeType]int, 4)
	for _, e := range list {
		out[e.Type]++
	}

	return out
}
