// Package levels estimates the seven logical state levels of a sampled signal
// from a histogram of its vertical values.
//
// 🚀 What are state levels?
//
//	A two-state waveform (a clock, a data line, a pulse train) spends most of
//	its time near a "low" and a "high" amplitude. Building a histogram of the
//	samples and picking one representative value from each half of the
//	occupied bin range yields those two levels; every other threshold is a
//	fixed percentage of the span between them:
//
//	  highest       ── representative of the upper half
//	  high          ── lowest + Refs.High/100 · range          (default 90%)
//	  high_runt     ── lowest + Refs.HighRunt/100 · range      (default 70%)
//	  intermediate  ── lowest + Refs.Intermediate/100 · range  (default 50%)
//	  low_runt      ── lowest + Refs.LowRunt/100 · range       (default 30%)
//	  low           ── lowest + Refs.Low/100 · range           (default 10%)
//	  lowest        ── representative of the lower half
//
// ✨ Key features:
//   - HistogramMode: representative = center of the most populated bin.
//   - HistogramMean: representative = count-weighted mean of bin centers.
//   - automatic bounds (one ULP outside the sample extremes) or explicit Bounds.
//   - histogram returned alongside the levels for inspection or plotting.
//
// ⚙️ Usage:
//
//	opts := levels.DefaultOptions()
//	opts.Mode = levels.HistogramMean
//	lv, hist, err := levels.Compute(sig, &opts)
//
// Bins are indexed from 0. The occupied range [first non-empty, last non-empty]
// is split by index, not by value; the middle bin belongs to both halves.
//
// Performance:
//
//   - Time:   O(n log n) (sorting samples for the histogram) + O(nbins)
//   - Memory: O(n + nbins)
//
// Errors:
//
//   - ErrConfig:    invalid references, bounds or bin count, or bounds that
//     exclude every sample.
//   - ErrOrder:     the derived levels are not strictly ordered (a flat signal).
//   - ErrNilSignal: nil *signal.Signal.
package levels
