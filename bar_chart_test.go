package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chart "github.com/tinywasm/chart"
	"github.com/tinywasm/chart/dataset"
)

func mustTable(t *testing.T, cells [][]float64, rowLabels, colLabels []string) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(cells, rowLabels, colLabels)
	require.NoError(t, err)
	return table
}

// swatches returns the filled rects that are legend swatches: squares with
// the recorder's line height as side.
func swatches(rec *chart.Recorder) []chart.RectOp {
	var out []chart.RectOp
	for _, op := range rec.FilledRects() {
		if op.Rect.W == rec.LineHeight && op.Rect.H == rec.LineHeight {
			out = append(out, op)
		}
	}
	return out
}

func TestBarChartClusteredVertical(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2}, {3, 4}}, nil, []string{"A", "B"})
	rec := chart.NewRecorder()

	err := chart.New(table).Bar().Size(800, 600).Draw(rec)
	require.NoError(t, err)

	// 2 categories × 2 series plus 2 legend swatches.
	assert.Len(t, rec.FilledRects(), 6)
	assert.Len(t, swatches(rec), 2)

	// Numeric axis reaches the max value 4, with a grid line per tick.
	assert.True(t, rec.HasText("4"))
	assert.Len(t, rec.Lines, 5)

	// Legend carries the column labels.
	assert.True(t, rec.HasText("A"))
	assert.True(t, rec.HasText("B"))
}

func TestBarChartStacked(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2}, {3, 4}}, nil, []string{"A", "B"})
	rec := chart.NewRecorder()

	err := chart.New(table).Bar().Size(800, 600).Stacked().Draw(rec)
	require.NoError(t, err)

	// Still one segment per cell plus the swatches.
	assert.Len(t, rec.FilledRects(), 6)

	// Scale now follows the largest category sum (3 + 4 = 7).
	assert.True(t, rec.HasText("7"))
	assert.Len(t, rec.Lines, 8)
}

func TestBarChartHorizontalMirrorsAxes(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2}, {3, 4}}, []string{"jan", "feb"}, []string{"A", "B"})
	rec := chart.NewRecorder()

	err := chart.New(table).Bar().Size(800, 600).Horizontal().Draw(rec)
	require.NoError(t, err)

	bars := rec.FilledRects()
	require.Len(t, bars, 6)

	// All bars share the grid's left edge.
	left := -1.0
	for _, op := range bars {
		if op.Rect.W == rec.LineHeight && op.Rect.H == rec.LineHeight {
			continue // swatch
		}
		if left < 0 {
			left = op.Rect.X
		}
		assert.Equal(t, left, op.Rect.X)
	}

	assert.True(t, rec.HasText("jan"))
	assert.True(t, rec.HasText("feb"))
}

func TestBarChartLegendDisabled(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2}, {3, 4}}, nil, nil)
	rec := chart.NewRecorder()

	err := chart.New(table).Bar().Size(800, 600).Legend(false).Draw(rec)
	require.NoError(t, err)

	assert.Len(t, rec.FilledRects(), 4)
	assert.Empty(t, swatches(rec))
}

func TestBarChartPaletteCycles(t *testing.T) {
	table := mustTable(t, [][]float64{{1, 2, 3}}, nil, nil)
	rec := chart.NewRecorder()
	palette := []chart.Color{chart.ColorRGB(10, 0, 0), chart.ColorRGB(0, 10, 0)}

	err := chart.New(table).Bar().Size(800, 600).Palette(palette).Legend(false).Draw(rec)
	require.NoError(t, err)

	bars := rec.FilledRects()
	require.Len(t, bars, 3)
	assert.Equal(t, palette[0], bars[0].Color)
	assert.Equal(t, palette[1], bars[1].Color)
	assert.Equal(t, palette[0], bars[2].Color)
}

func TestBarChartRejectsNonPositiveData(t *testing.T) {
	table := mustTable(t, [][]float64{{0, 0}}, nil, nil)
	err := chart.New(table).Bar().Draw(chart.NewRecorder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no positive values")
}

func TestBarChartRejectsNegativeValues(t *testing.T) {
	table := mustTable(t, [][]float64{{1, -2}, {3, 4}}, nil, nil)
	err := chart.New(table).Bar().Draw(chart.NewRecorder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative value")
}

func TestBarChartErrorLeavesSurfaceBlank(t *testing.T) {
	for name, cells := range map[string][][]float64{
		"all zero": {{0, 0}},
		"negative": {{1, -2}},
	} {
		rec := chart.NewRecorder()
		err := chart.New(mustTable(t, cells, nil, nil)).Bar().Title("Quarterly").Draw(rec)
		require.Error(t, err, name)

		// Rejected tables must not leave a title or stray marks behind.
		assert.Empty(t, rec.Texts, name)
		assert.Empty(t, rec.Rects, name)
		assert.Empty(t, rec.Lines, name)
	}
}

func TestBarChartTitleDrawn(t *testing.T) {
	table := mustTable(t, [][]float64{{1}}, nil, nil)
	rec := chart.NewRecorder()

	err := chart.New(table).Bar().Title("Quarterly").Size(800, 600).Draw(rec)
	require.NoError(t, err)
	assert.True(t, rec.HasText("Quarterly"))
}
