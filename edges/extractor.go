// SPDX-License-Identifier: MIT

package edges

import (
	"fmt"

	"github.com/katalvlaran/lvledge/area"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/signal"
	"go.uber.org/zap"
)

// Extractor sweeps one signal against one set of state levels.
// It holds no mutable state after construction: Edges, ExtractEdge and
// ExtractRuntEdges may be called concurrently and always return the same
// result for the same arguments.
type Extractor struct {
	sig *signal.Signal
	lv  levels.StateLevels
	idx *area.Index
	cfg config
}

// NewExtractor validates lv and builds the area index of sig.
//
// Errors:
//   - ErrNilSignal if sig is nil.
//   - ErrOrder (also matching levels.ErrOrder) if lv is not strictly ordered.
//
// Complexity: O(n) time and memory.
func NewExtractor(sig *signal.Signal, lv levels.StateLevels, opts ...Option) (*Extractor, error) {
	if sig == nil {
		return nil, ErrNilSignal
	}
	if err := lv.Validate(); err != nil {
		return nil, fmt.Errorf("NewExtractor: %w: %w", ErrOrder, err)
	}
	idx, err := area.Build(sig, lv)
	if err != nil {
		return nil, fmt.Errorf("NewExtractor: %w", err)
	}
	cfg := newConfig(opts...)
	if cfg.runtOpts.Logger == nil {
		cfg.runtOpts.Logger = cfg.log
	}

	return &Extractor{sig: sig, lv: lv, idx: idx, cfg: cfg}, nil
}

// Extract is NewExtractor followed by Edges.
func Extract(sig *signal.Signal, lv levels.StateLevels, opts ...Option) ([]Edge, error) {
	x, err := NewExtractor(sig, lv, opts...)
	if err != nil {
		return nil, err
	}

	return x.Edges()
}

// Analyze computes the state levels of sig with levelOpts (nil means
// levels.DefaultOptions) and extracts its edges.
func Analyze(sig *signal.Signal, levelOpts *levels.Options, opts ...Option) (levels.StateLevels, []Edge, error) {
	lv, _, err := levels.Compute(sig, levelOpts)
	if err != nil {
		return levels.StateLevels{}, nil, err
	}
	list, err := Extract(sig, lv, opts...)
	if err != nil {
		return levels.StateLevels{}, nil, err
	}

	return lv, list, nil
}

// Levels returns the state levels the extractor was built with.
func (x *Extractor) Levels() levels.StateLevels {
	return x.lv
}

// Index returns the area index the extractor sweeps.
func (x *Extractor) Index() *area.Index {
	return x.idx
}

// search is one of the two sweep states.
type search int

const (
	// searchFalling: curr is in High, looking for the way down.
	searchFalling search = iota
	// searchRising: curr is in Low, looking for the way up.
	searchRising
)

// sweep holds the regions and edge types of one search state; the rising
// sweep mirrors the falling one.
type sweep struct {
	from, to, runt area.Region
	edge, runtEdge EdgeType
	next           search
}

var sweeps = [...]sweep{
	searchFalling: {from: area.High, to: area.Low, runt: area.RuntLow, edge: Falling, runtEdge: FallingRunt, next: searchRising},
	searchRising:  {from: area.Low, to: area.High, runt: area.RuntHigh, edge: Rising, runtEdge: RisingRunt, next: searchFalling},
}

func (s search) String() string {
	if s == searchFalling {
		return "SearchFalling"
	}

	return "SearchRising"
}

// Edges returns every edge of the signal in chronological order.
//
// Algorithm Outline:
//  1. Start in whichever of High/Low occurs first (SearchFalling from High,
//     SearchRising from Low). Neither present ⇒ no edges.
//  2. From curr (in the "from" region) look up: to = first "to" index ≥ curr,
//     runt = first runt-region index ≥ curr, back = first "from" index ≥ runt.
//  3. Decide:
//     to exists and (no runt or to < runt)        ⇒ single edge
//     to exists, runt ≤ to, back exists, back < to ⇒ runt pair
//     to exists, runt ≤ to, otherwise              ⇒ single edge
//     no to, runt and back exist                   ⇒ runt pair
//     otherwise                                    ⇒ stop
//  4. Single edge: [last "from" index before to, to]; curr = to; flip state.
//     Runt pair:   split [last "from" index before runt, back] with
//     ExtractRuntEdges; curr = back; keep state.
//
// curr strictly increases, so the sweep ends after at most one step per
// region boundary crossing: O(edges · log n).
//
// On any error the partial result is discarded and (nil, err) returned.
func (x *Extractor) Edges() ([]Edge, error) {
	state, curr, ok, err := x.initialState()
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0)
	if !ok {
		x.cfg.log.Debug("no High or Low sample; no edges")

		return out, nil
	}

	for {
		s := sweeps[state]
		to, toOK, err := x.idx.FirstIn(s.to, curr)
		if err != nil {
			return nil, x.wrap(err)
		}
		runt, runtOK, err := x.idx.FirstIn(s.runt, curr)
		if err != nil {
			return nil, x.wrap(err)
		}
		back, backOK := 0, false
		if runtOK {
			if back, backOK, err = x.idx.FirstIn(s.from, runt); err != nil {
				return nil, x.wrap(err)
			}
		}

		var next int
		switch {
		case toOK && (!runtOK || to < runt), toOK && !(backOK && back < to):
			begin, found, err := x.idx.LastInRange(s.from, to, curr)
			if err != nil {
				return nil, x.wrap(err)
			}
			if !found {
				return nil, fmt.Errorf("Edges: %v: no %v sample in [%d, %d): %w", state, s.from, curr, to, ErrInvariant)
			}
			e, err := x.ExtractEdge(s.edge, begin, to)
			if err != nil {
				return nil, err
			}
			x.cfg.log.Debug("edge", zap.Stringer("state", state), zap.Stringer("type", e.Type),
				zap.Int("begin", begin), zap.Int("end", to))
			out = append(out, e)
			next = to
			state = s.next

		case runtOK && backOK:
			begin, found, err := x.idx.LastInRange(s.from, runt, curr)
			if err != nil {
				return nil, x.wrap(err)
			}
			if !found {
				return nil, fmt.Errorf("Edges: %v: no %v sample in [%d, %d): %w", state, s.from, curr, runt, ErrInvariant)
			}
			pair, err := x.ExtractRuntEdges(s.runtEdge, begin, back)
			if err != nil {
				return nil, err
			}
			x.cfg.log.Debug("runt pair", zap.Stringer("state", state),
				zap.Int("begin", begin), zap.Int("split_end", pair[0].End.Index),
				zap.Int("split_begin", pair[1].Begin.Index), zap.Int("end", back))
			out = append(out, pair[0], pair[1])
			next = back

		default:
			x.cfg.log.Debug("sweep finished", zap.Stringer("state", state), zap.Int("curr", curr),
				zap.Int("edges", len(out)))

			return out, nil
		}

		if next <= curr {
			return nil, fmt.Errorf("Edges: %v: no progress at %d: %w", state, curr, ErrInvariant)
		}
		curr = next
	}
}

// initialState picks the search state from the first High or Low sample.
func (x *Extractor) initialState() (state search, curr int, ok bool, err error) {
	high, highOK, err := x.idx.FirstIn(area.High, 0)
	if err != nil {
		return 0, 0, false, x.wrap(err)
	}
	low, lowOK, err := x.idx.FirstIn(area.Low, 0)
	if err != nil {
		return 0, 0, false, x.wrap(err)
	}

	switch {
	case highOK && (!lowOK || high < low):
		state, curr = searchFalling, high
	case lowOK:
		state, curr = searchRising, low
	default:
		return 0, 0, false, nil
	}
	x.cfg.log.Debug("initial state", zap.Stringer("state", state), zap.Int("curr", curr))

	return state, curr, true, nil
}

// wrap maps area lookup failures onto the edges taxonomy.
func (x *Extractor) wrap(err error) error {
	return fmt.Errorf("Edges: %w: %w", ErrInvariant, err)
}
