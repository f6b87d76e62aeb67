// Package chart renders numeric tables as bar, histogram, pie or scatter
// charts onto a Surface. Renderers are pure single-pass pipelines: title,
// derived aggregates, label metrics, layout rectangles, grid, data marks,
// legend. All intermediate state lives inside one Draw call.
package chart

import "github.com/tinywasm/chart/dataset"

// Factory builds chart renderers over one table.
type Factory struct {
	data *dataset.Table
}

// New returns a factory to create the various chart types for t.
func New(t *dataset.Table) *Factory {
	return &Factory{data: t}
}

// Bar starts building a bar chart.
func (f *Factory) Bar() *BarChart {
	return &BarChart{data: f.data}
}

// Histogram starts building a histogram.
func (f *Factory) Histogram() *HistogramChart {
	return &HistogramChart{data: f.data}
}

// Pie starts building a pie chart.
func (f *Factory) Pie() *PieChart {
	return &PieChart{data: f.data}
}

// Scatter starts building a scatter chart.
func (f *Factory) Scatter() *ScatterChart {
	return &ScatterChart{data: f.data}
}
