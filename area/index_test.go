package area_test

import (
	"testing"

	"github.com/katalvlaran/lvledge/area"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedLevels is a hand-written StateLevels on a 0..100 scale.
var fixedLevels = levels.StateLevels{
	Lowest: 0, Low: 10, LowRunt: 30, Intermediate: 50, HighRunt: 70, High: 90, Highest: 100,
}

// buildFixture indexes samples that sit on and around every level.
//
//	index: 0   1  2   3   4   5   6   7   8   9   10  11
//	value: -5  5  10  20  30  50  60  70  80  90  95  100
func buildFixture(t *testing.T) *area.Index {
	t.Helper()
	sig, err := signal.NewUniform([]float64{-5, 5, 10, 20, 30, 50, 60, 70, 80, 90, 95, 100}, 0, 1)
	require.NoError(t, err)
	idx, err := area.Build(sig, fixedLevels)
	require.NoError(t, err)

	return idx
}

// TestBuild_Predicates checks every region, including closed/open boundaries.
func TestBuild_Predicates(t *testing.T) {
	idx := buildFixture(t)
	want := map[area.Region][]int{
		area.High:     {10, 11},
		area.IntHigh:  {6, 7, 8, 9},
		area.IntLow:   {2, 3, 4, 5},
		area.Low:      {0, 1},
		area.RuntHigh: {4, 5, 6, 7, 8, 9},
		area.RuntLow:  {2, 3, 4, 5, 6, 7},
	}
	for _, r := range area.Regions() {
		got, err := idx.Indices(r)
		require.NoError(t, err)
		assert.Equal(t, want[r], got, "region %v", r)
	}
	assert.Equal(t, 12, idx.Len())
}

// TestBuild_Partition verifies High/IntHigh/IntLow/Low cover each sample exactly once.
func TestBuild_Partition(t *testing.T) {
	idx := buildFixture(t)
	for i := 0; i < idx.Len(); i++ {
		n := 0
		for _, r := range []area.Region{area.High, area.IntHigh, area.IntLow, area.Low} {
			if idx.Contains(r, i) {
				n++
			}
		}
		assert.Equal(t, 1, n, "sample %d", i)
	}
}

// TestQueries covers found/not-found outcomes for all four query forms.
func TestQueries(t *testing.T) {
	idx := buildFixture(t)

	tests := []struct {
		name   string
		query  func() (int, bool, error)
		want   int
		wantOK bool
	}{
		{"FirstIn High from 0", func() (int, bool, error) { return idx.FirstIn(area.High, 0) }, 10, true},
		{"FirstIn High on member", func() (int, bool, error) { return idx.FirstIn(area.High, 11) }, 11, true},
		{"FirstIn Low after last", func() (int, bool, error) { return idx.FirstIn(area.Low, 2) }, 0, false},
		{"FirstInRange RuntLow", func() (int, bool, error) { return idx.FirstInRange(area.RuntLow, 3, 6) }, 3, true},
		{"FirstInRange end exclusive", func() (int, bool, error) { return idx.FirstInRange(area.High, 0, 10) }, 0, false},
		{"LastIn IntLow", func() (int, bool, error) { return idx.LastIn(area.IntLow, 5) }, 4, true},
		{"LastIn nothing before", func() (int, bool, error) { return idx.LastIn(area.Low, 0) }, 0, false},
		{"LastInRange IntHigh", func() (int, bool, error) { return idx.LastInRange(area.IntHigh, 9, 7) }, 8, true},
		{"LastInRange below begin", func() (int, bool, error) { return idx.LastInRange(area.IntHigh, 7, 7) }, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := tc.query()
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestQueries_Errors checks ErrRange and ErrRegion.
func TestQueries_Errors(t *testing.T) {
	idx := buildFixture(t)

	_, _, err := idx.FirstIn(area.High, 12)
	assert.ErrorIs(t, err, area.ErrRange)
	_, _, err = idx.FirstIn(area.High, -1)
	assert.ErrorIs(t, err, area.ErrRange)
	_, _, err = idx.FirstInRange(area.High, 0, 12)
	assert.ErrorIs(t, err, area.ErrRange)
	_, _, err = idx.LastIn(area.High, 12)
	assert.ErrorIs(t, err, area.ErrRange)
	_, _, err = idx.LastInRange(area.High, 5, -1)
	assert.ErrorIs(t, err, area.ErrRange)
	_, _, err = idx.FirstIn(area.Region(42), 0)
	assert.ErrorIs(t, err, area.ErrRegion)
	_, err = idx.Indices(area.Region(-1))
	assert.ErrorIs(t, err, area.ErrRegion)
	assert.False(t, idx.Contains(area.Region(42), 0))

	_, err = area.Build(nil, fixedLevels)
	assert.ErrorIs(t, err, area.ErrNilSignal)
}

// TestRegion_String covers names and the fallback.
func TestRegion_String(t *testing.T) {
	assert.Equal(t, "RuntLow", area.RuntLow.String())
	assert.Equal(t, "Region(9)", area.Region(9).String())
}
