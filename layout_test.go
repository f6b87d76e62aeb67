package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chart "github.com/tinywasm/chart"
)

func TestTitleRectEmptyTitle(t *testing.T) {
	rec := chart.NewRecorder()
	r := chart.TitleRect("", 800, rec)
	assert.Equal(t, chart.Rect{X: 0, Y: 0, W: 800, H: 0}, r)
}

func TestTitleRectMeasuredHeight(t *testing.T) {
	rec := chart.NewRecorder()
	r := chart.TitleRect("Sales", 800, rec)
	assert.Equal(t, 800.0, r.W)
	assert.Greater(t, r.H, rec.LineHeight)
}

func TestLegendRectHiddenIsZeroHeight(t *testing.T) {
	metrics := []chart.Size{{W: 30, H: 12}}
	r := chart.LegendRect(800, 600, metrics, false)
	assert.Equal(t, 0.0, r.H)
	assert.Equal(t, 600.0, r.Y)
}

func TestLegendToggleOnlyMovesLegend(t *testing.T) {
	rec := chart.NewRecorder()
	title := chart.TitleRect("Sales", 800, rec)
	metrics := []chart.Size{{W: 30, H: 12}}

	shown := chart.LegendRect(800, 600, metrics, true)
	hidden := chart.LegendRect(800, 600, metrics, false)
	graphShown := chart.GraphRect(title, 800, 600, shown)
	graphHidden := chart.GraphRect(title, 800, 600, hidden)

	// Everything above the legend keeps its top edge.
	assert.Equal(t, graphHidden.X, graphShown.X)
	assert.Equal(t, graphHidden.Y, graphShown.Y)
	assert.Equal(t, graphHidden.W, graphShown.W)

	// The graph always ends exactly at the legend top.
	assert.InDelta(t, shown.Y, graphShown.Y+graphShown.H, 1e-9)
	assert.InDelta(t, hidden.Y, graphHidden.Y+graphHidden.H, 1e-9)
}

func TestGraphRectFillsGap(t *testing.T) {
	rec := chart.NewRecorder()
	title := chart.TitleRect("Sales", 800, rec)
	legend := chart.LegendRect(800, 600, []chart.Size{{W: 30, H: 12}}, true)
	graph := chart.GraphRect(title, 800, 600, legend)

	assert.InDelta(t, title.Y+title.H, graph.Y, 1e-9)
	assert.InDelta(t, legend.Y, graph.Y+graph.H, 1e-9)
	assert.Less(t, graph.W, 800.0)
	require.LessOrEqual(t, title.H+graph.H+legend.H, 600.0)
}

func TestGridRectReservesGutters(t *testing.T) {
	graph := chart.Rect{X: 10, Y: 40, W: 780, H: 500}
	xMetrics := []chart.Size{{W: 20, H: 12}, {W: 25, H: 12}}
	yMetrics := []chart.Size{{W: 14, H: 12}, {W: 35, H: 12}}

	grid := chart.GridRect(graph, xMetrics, yMetrics)

	// Left gutter at least as wide as the widest y label, bottom gutter at
	// least as tall as the tallest x label.
	assert.GreaterOrEqual(t, grid.X-graph.X, 35.0)
	assert.GreaterOrEqual(t, (graph.Y+graph.H)-(grid.Y+grid.H), 12.0)
	assert.Greater(t, grid.Y, graph.Y)
	assert.Less(t, grid.X+grid.W, graph.X+graph.W)
}
