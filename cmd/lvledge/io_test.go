package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvledge/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSignal(t *testing.T) {
	t.Run("two columns with header", func(t *testing.T) {
		sig, err := readSignal(strings.NewReader("h,v\n0.5,1\n1.5,2\n# trailing comment\n2.5,3\n"))
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 1.5, 2.5}, sig.HValues())
		assert.Equal(t, []float64{1, 2, 3}, sig.VValues())
	})

	t.Run("single column", func(t *testing.T) {
		sig, err := readSignal(strings.NewReader("4\n 5\n6\n"))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2}, sig.HValues())
		assert.Equal(t, []float64{4, 5, 6}, sig.VValues())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := readSignal(strings.NewReader("h,v\n"))
		assert.ErrorIs(t, err, errNoSamples)

		_, err = readSignal(strings.NewReader("0,1\n1\n"))
		assert.Error(t, err, "column count changes")

		_, err = readSignal(strings.NewReader("0,1,2\n"))
		assert.Error(t, err, "too many columns")

		_, err = readSignal(strings.NewReader("0,1\nx,2\n"))
		assert.Error(t, err, "only the first record may be a header")

		_, err = readSignal(strings.NewReader("1,0\n0,1\n"))
		assert.ErrorIs(t, err, signal.ErrNotIncreasing)
	})
}

func TestWriteSignal_ReadBack(t *testing.T) {
	sig, err := signal.New([]float64{0, 0.25, 1e-3 + 1}, []float64{-1, 2.5, 1e6})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSignal(&buf, sig))
	assert.Equal(t, "h,v\n0,-1\n0.25,2.5\n1.001,1e+06\n", buf.String())

	back, err := readSignal(&buf)
	require.NoError(t, err)
	assert.Equal(t, sig.HValues(), back.HValues())
	assert.Equal(t, sig.VValues(), back.VValues())
}
