// Package area partitions the sample indices of a signal into six named
// amplitude regions and answers "first/last index of a region inside a
// window" queries by binary search.
//
// What:
//
//   - Region: High, IntHigh, IntLow, Low, RuntHigh, RuntLow.
//   - Index: one ascending, de-duplicated index slice per region, built by a
//     single linear scan of the vertical values against a levels.StateLevels.
//   - FirstIn / LastIn (and their windowed variants) return the nearest
//     qualifying index in O(log n).
//
// Region predicates (v = vertical value):
//
//	High:     v > high
//	IntHigh:  intermediate < v ≤ high
//	IntLow:   low ≤ v ≤ intermediate
//	Low:      v < low
//	RuntHigh: low_runt ≤ v ≤ high
//	RuntLow:  low ≤ v ≤ high_runt
//
// High, IntHigh, IntLow and Low partition every sample. RuntHigh and RuntLow
// overlap IntHigh/IntLow on purpose.
//
// Complexity:
//
//   - Build:          O(n) time, O(n) memory.
//   - First*/Last*:   O(log n) time, O(1) memory.
//
// Errors:
//
//   - ErrRange:      a window bound outside [0, Len()).
//   - ErrRegion:     an unknown Region value.
//   - ErrNilSignal:  Build called with a nil signal.
package area
