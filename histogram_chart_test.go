package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chart "github.com/tinywasm/chart"
)

func TestHistogramThreeBuckets(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 1, 1, 5, 5, 9}}, nil, nil)
	rec := chart.NewRecorder()

	err := chart.New(table).Histogram().Size(800, 600).Bins(3).Draw(rec)
	require.NoError(t, err)

	bars := rec.FilledRects()
	require.Len(t, bars, 3)

	// Counts 3, 2, 1 show up as strictly decreasing bar heights.
	assert.Greater(t, bars[0].Rect.H, bars[1].Rect.H)
	assert.Greater(t, bars[1].Rect.H, bars[2].Rect.H)
	assert.InDelta(t, bars[2].Rect.H*3, bars[0].Rect.H, 1e-9)

	// No legend for the single implicit series.
	assert.Empty(t, swatches(rec))
}

func TestHistogramDefaultBucketCount(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2, 3, 4, 5, 6}}, nil, nil)

	for _, bins := range []int{0, -5} {
		rec := chart.NewRecorder()
		err := chart.New(table).Histogram().Size(800, 600).Bins(bins).Draw(rec)
		require.NoError(t, err)
		assert.Len(t, rec.FilledRects(), 10)
	}
}

func TestHistogramFlattensAllRows(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 1}, {9, 9}}, nil, nil)
	rec := chart.NewRecorder()

	err := chart.New(table).Histogram().Size(800, 600).Bins(2).Draw(rec)
	require.NoError(t, err)

	bars := rec.FilledRects()
	require.Len(t, bars, 2)
	assert.InDelta(t, bars[0].Rect.H, bars[1].Rect.H, 1e-9)
}
