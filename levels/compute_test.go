package levels_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/pulsegen"
	"github.com/katalvlaran/lvledge/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// mustUniform builds a signal on a unit grid or fails the test.
func mustUniform(t *testing.T, v ...float64) *signal.Signal {
	t.Helper()
	s, err := signal.NewUniform(v, 0, 1)
	require.NoError(t, err)

	return s
}

// TestCompute_TrapezoidMode checks the default configuration on a 0..100 pulse train.
// The lowest/highest bins are the 0 and 100 plateaus; bins are ~1 wide.
func TestCompute_TrapezoidMode(t *testing.T) {
	sig, err := pulsegen.Trapezoid(4)
	require.NoError(t, err)

	lv, hist, err := levels.Compute(sig, nil)
	require.NoError(t, err)
	require.NoError(t, lv.Validate())

	assert.InDelta(t, 0.5, lv.Lowest, tol)
	assert.InDelta(t, 99.5, lv.Highest, tol)
	assert.InDelta(t, 10.4, lv.Low, tol)
	assert.InDelta(t, 30.2, lv.LowRunt, tol)
	assert.InDelta(t, 50.0, lv.Intermediate, tol)
	assert.InDelta(t, 69.8, lv.HighRunt, tol)
	assert.InDelta(t, 89.6, lv.High, tol)
	assert.InDelta(t, 99.0, lv.Range(), tol)

	require.Len(t, hist.Centers, levels.DefaultNBins)
	require.Len(t, hist.Counts, levels.DefaultNBins)
	assert.Equal(t, 44.0, hist.Counts[0])
	assert.Equal(t, 44.0, hist.Counts[levels.DefaultNBins-1])
	total := 0.0
	for _, c := range hist.Counts {
		total += c
	}
	assert.Equal(t, float64(sig.Len()), total, "auto bounds must include every sample")
	assert.Less(t, hist.Lower, 0.0)
	assert.Greater(t, hist.Upper, 100.0)
}

// TestCompute_Mean checks that HistogramMean keeps the ordering invariant and
// pulls the representatives toward the ramps.
func TestCompute_Mean(t *testing.T) {
	sig, err := pulsegen.Trapezoid(4)
	require.NoError(t, err)

	opts := levels.DefaultOptions()
	opts.Mode = levels.HistogramMean
	lv, _, err := levels.Compute(sig, &opts)
	require.NoError(t, err)
	require.NoError(t, lv.Validate())

	assert.Greater(t, lv.Lowest, 0.5)
	assert.Less(t, lv.Highest, 99.5)
	assert.Less(t, lv.Low, lv.LowRunt)
	assert.Less(t, lv.HighRunt, lv.High)
}

// TestCompute_ExplicitBounds ignores samples outside the range and closes the last bin.
func TestCompute_ExplicitBounds(t *testing.T) {
	sig := mustUniform(t, 0, 0, 0, 10, 10, 10, 1000, -3)

	opts := levels.DefaultOptions()
	opts.NBins = 10
	opts.Bounds = &levels.Bounds{Lower: 0, Upper: 10}
	lv, hist, err := levels.Compute(sig, &opts)
	require.NoError(t, err)

	assert.Equal(t, 3.0, hist.Counts[0])
	assert.Equal(t, 3.0, hist.Counts[9], "a sample equal to Upper belongs to the last bin")
	assert.Equal(t, 0.5, hist.Centers[0])
	assert.Equal(t, 9.5, hist.Centers[9])

	assert.Equal(t, 0.5, lv.Lowest)
	assert.Equal(t, 9.5, lv.Highest)
	assert.InDelta(t, 5.0, lv.Intermediate, tol)
	assert.InDelta(t, 1.4, lv.Low, tol)
	assert.InDelta(t, 8.6, lv.High, tol)
}

// TestCompute_SplitByIndex splits the occupied bins by index: most samples
// sit above the value midpoint, yet bin 2 is still the upper representative.
func TestCompute_SplitByIndex(t *testing.T) {
	// bins over [0, 4] with 4 bins: values land in bins 0, 2, 2, 2, 3.
	sig := mustUniform(t, 0.1, 2.5, 2.5, 2.5, 3.9)

	opts := levels.DefaultOptions()
	opts.NBins = 4
	opts.Bounds = &levels.Bounds{Lower: 0, Upper: 4}
	lv, _, err := levels.Compute(sig, &opts)
	require.NoError(t, err)

	// occupied [0, 3], mid = 1; lower half bins 0..1 → bin 0 (center 0.5),
	// upper half bins 1..3 → bin 2 (center 2.5).
	assert.Equal(t, 0.5, lv.Lowest)
	assert.Equal(t, 2.5, lv.Highest)
}

// TestCompute_ConfigErrors table-tests every precondition.
func TestCompute_ConfigErrors(t *testing.T) {
	sig := mustUniform(t, 0, 1, 0, 1)

	mutate := func(f func(o *levels.Options)) *levels.Options {
		o := levels.DefaultOptions()
		f(&o)

		return &o
	}
	tests := []struct {
		name string
		opts *levels.Options
	}{
		{"low equals high", mutate(func(o *levels.Options) { o.Refs.Low = o.Refs.High })},
		{"ref above 100", mutate(func(o *levels.Options) { o.Refs.High = 100.5 })},
		{"ref below 0", mutate(func(o *levels.Options) { o.Refs.Low = -1 })},
		{"ref NaN", mutate(func(o *levels.Options) { o.Refs.Intermediate = math.NaN() })},
		{"runt refs swapped", mutate(func(o *levels.Options) { o.Refs.LowRunt, o.Refs.HighRunt = 70, 30 })},
		{"intermediate equals low runt", mutate(func(o *levels.Options) { o.Refs.Intermediate = o.Refs.LowRunt })},
		{"nbins 1", mutate(func(o *levels.Options) { o.NBins = 1 })},
		{"bounds reversed", mutate(func(o *levels.Options) { o.Bounds = &levels.Bounds{Lower: 2, Upper: 1} })},
		{"bounds Inf", mutate(func(o *levels.Options) { o.Bounds = &levels.Bounds{Lower: math.Inf(-1), Upper: 1} })},
		{"bounds exclude samples", mutate(func(o *levels.Options) { o.Bounds = &levels.Bounds{Lower: 5, Upper: 6} })},
		{"unknown mode", mutate(func(o *levels.Options) { o.Mode = levels.Mode(7) })},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := levels.Compute(sig, tc.opts)
			assert.ErrorIs(t, err, levels.ErrConfig)
		})
	}
}

// TestCompute_FlatSignal reports ErrOrder instead of collapsed levels.
func TestCompute_FlatSignal(t *testing.T) {
	_, _, err := levels.Compute(mustUniform(t, 3, 3, 3), nil)
	assert.ErrorIs(t, err, levels.ErrOrder)

	opts := levels.DefaultOptions()
	opts.Bounds = &levels.Bounds{Lower: 5, Upper: 5}
	_, _, err = levels.Compute(mustUniform(t, 5, 5, 7), &opts)
	assert.ErrorIs(t, err, levels.ErrOrder, "degenerate bounds widen to a unit range")
}

// TestCompute_NilSignal guards the nil receiver.
func TestCompute_NilSignal(t *testing.T) {
	_, _, err := levels.Compute(nil, nil)
	assert.ErrorIs(t, err, levels.ErrNilSignal)
}

// TestCompute_Deterministic repeats the computation bit for bit.
func TestCompute_Deterministic(t *testing.T) {
	sig, err := pulsegen.Trapezoid(3, pulsegen.WithNoise(2), pulsegen.WithSeed(11))
	require.NoError(t, err)
	for _, mode := range []levels.Mode{levels.HistogramMode, levels.HistogramMean} {
		opts := levels.DefaultOptions()
		opts.Mode = mode
		a, ha, err := levels.Compute(sig, &opts)
		require.NoError(t, err)
		b, hb, err := levels.Compute(sig, &opts)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, ha, hb)
		assert.NoError(t, a.Validate(), "mode %v", mode)
	}
}

// TestStateLevels_Validate rejects every broken link of the chain.
func TestStateLevels_Validate(t *testing.T) {
	good := levels.StateLevels{Lowest: 0, Low: 0, LowRunt: 1, Intermediate: 2, HighRunt: 3, High: 4, Highest: 4}
	assert.NoError(t, good.Validate(), "lowest may equal low and high may equal highest")

	bad := good
	bad.LowRunt = bad.Intermediate
	assert.ErrorIs(t, bad.Validate(), levels.ErrOrder)

	bad = good
	bad.Highest = 3.5
	assert.ErrorIs(t, bad.Validate(), levels.ErrOrder)

	bad = good
	bad.Low = math.NaN()
	assert.ErrorIs(t, bad.Validate(), levels.ErrOrder)
}

// TestParseMode covers accepted spellings and the error path.
func TestParseMode(t *testing.T) {
	m, err := levels.ParseMode("MEAN")
	require.NoError(t, err)
	assert.Equal(t, levels.HistogramMean, m)

	m, err = levels.ParseMode("histogram-mode")
	require.NoError(t, err)
	assert.Equal(t, levels.HistogramMode, m)
	assert.Equal(t, "mode", m.String())

	_, err = levels.ParseMode("median")
	assert.ErrorIs(t, err, levels.ErrConfig)
}

// TestHistogram_Occupied finds the first and last non-empty bins.
func TestHistogram_Occupied(t *testing.T) {
	h := levels.Histogram{Counts: []float64{0, 2, 0, 1, 0}}
	lo, hi, ok := h.Occupied()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)

	_, _, ok = levels.Histogram{Counts: []float64{0, 0}}.Occupied()
	assert.False(t, ok)
}
