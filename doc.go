// Package lvledge turns sampled two-state signals into logical state levels
// and an ordered list of transitions (edges), runt edges included.
//
// 🚀 What is lvledge?
//
//	A small numeric pipeline over (h, v) sample pairs:
//		• signal/   — immutable, validated sample container
//		• levels/   — histogram-derived state levels (mode or mean)
//		• area/     — six amplitude regions with binary-search lookups
//		• edges/    — the transition state machine and runt splitter
//		• pulsegen/ — deterministic trapezoid pulse trains for tests and demos
//
//	Data flows one way:
//
//	  Signal → levels.Compute → StateLevels → area.Build → edges.Extractor → []Edge
//
// ✨ Why lvledge?
//
//   - Deterministic – the same samples and options always give the same edges
//   - Reentrant – no shared scratch state, extractors are safe for concurrent use
//   - Inspectable – histograms, regions and Debug-level zap logs of every decision
//
// Quick ASCII example:
//
//	  100 ┤      ┌──┐  ┌──┐
//	      │     ╱    ╲╱    ╲        Rising, FallingRunt, RisingRunt, Falling
//	    0 ┤────╯            ╰────
//
// The lvledge command (cmd/lvledge) wraps the pipeline for CSV input:
//
//	go install github.com/katalvlaran/lvledge/cmd/lvledge@latest
package lvledge
