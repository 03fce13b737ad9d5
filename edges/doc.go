// Package edges extracts, in signal order, every logical transition of a
// sampled two-state signal, including runt edges that turn back before
// reaching the opposite level.
//
// 🚀 How it works:
//
//	The Extractor sweeps an area.Index with a two-state machine.
//	SearchFalling starts inside High and looks for the next Low sample;
//	SearchRising mirrors it. A RuntLow (RuntHigh) sample followed by a return
//	to High (Low) before any Low (High) sample marks a runt pair; that bracket
//	is re-analysed with local state levels to find where one runt ends and the
//	other begins.
//
//	  High  ──┐      ┌──────┐  ┌───      Rising, Falling, ...
//	          │      │      └──┘         FallingRunt + RisingRunt (the notch)
//	  Low     └──────┘
//
// ✨ Key features:
//   - EdgeType: Falling, FallingRunt, Rising, RisingRunt.
//   - IntPointPolicy: nearest-to-intermediate (default) or forced begin/end.
//   - ToArrays: begin/intermediate/end projection for plotting, no dedup.
//   - Extractor is immutable after NewExtractor: safe for concurrent use,
//     every runt split works on its own freshly sliced sub-signal.
//
// ⚙️ Usage:
//
//	lv, _, err := levels.Compute(sig, nil)
//	list, err := edges.Extract(sig, lv,
//		edges.WithIntPointPolicy(edges.Nearest),
//		edges.WithLogger(logger),
//	)
//	h, v, err := edges.ToArrays(list, edges.Intermediate)
//
// Performance:
//
//   - NewExtractor: O(n)
//   - Edges:        O(edges · log n) plus O(m log m) per runt bracket of m samples
//
// Errors:
//
//   - ErrNilSignal, ErrOrder: bad NewExtractor arguments.
//   - ErrRange, ErrOrder, ErrEdgeType: bad ExtractEdge/ExtractRuntEdges arguments.
//   - ErrEmpty, ErrWhich: bad ToArrays arguments.
//   - ErrPolicy: unknown ParseIntPointPolicy name.
//   - ErrInvariant: the sweep reached a state its lookups rule out.
package edges
