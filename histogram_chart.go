package chart

import (
	"github.com/tinywasm/chart/dataset"
	"github.com/tinywasm/chart/errs"
)

// HistogramChart bins every cell of the table into equal-width buckets
// spanning [min, max] of the input and draws one bar per bucket. A bucket
// holds the values in [lo, hi); the last bucket also includes max. The
// single implicit series needs no legend, so the legend strip is always
// zero-height.
type HistogramChart struct {
	data    *dataset.Table
	title   string
	width   float64
	height  float64
	palette []Color
	bins    int
}

func (c *HistogramChart) Title(t string) *HistogramChart {
	c.title = t
	return c
}

func (c *HistogramChart) Size(w, h float64) *HistogramChart {
	c.width = w
	c.height = h
	return c
}

func (c *HistogramChart) Palette(p []Color) *HistogramChart {
	c.palette = p
	return c
}

// Bins sets the bucket count. Non-positive counts fall back to the
// default of 10.
func (c *HistogramChart) Bins(n int) *HistogramChart {
	c.bins = n
	return c
}

func (c *HistogramChart) Draw(s Surface) error {
	if c.width == 0 {
		c.width = DefaultWidth
	}
	if c.height == 0 {
		c.height = DefaultHeight
	}
	if len(c.palette) == 0 {
		c.palette = DefaultPalette
	}
	n := c.bins
	if n <= 0 {
		n = DefaultBins
	}
	if c.data == nil || c.data.Rows() == 0 {
		return errs.New("histogram: empty table")
	}

	values := c.data.Values()

	// Title
	titleRect := TitleRect(c.title, c.width, s)
	drawTitle(s, c.title, titleRect)

	// Bins
	lo, hi := extrema(values)
	counts := binCounts(values, lo, hi, n)
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	ticks := DecadeTicks(float64(maxCount), 0)
	axisMax := ticks[len(ticks)-1]
	tickLabels := make([]string, len(ticks))
	for i, v := range ticks {
		tickLabels[i] = formatValue(v)
	}

	// Bucket labels sit at the bin midpoints, between the boundaries.
	binLabels := make([]string, n)
	for i, v := range InterpolateMidpoints(lo, hi, n) {
		binLabels[i] = formatValue(v)
	}

	// Layout
	legendRect := LegendRect(c.width, c.height, nil, false)
	graphRect := GraphRect(titleRect, c.width, c.height, legendRect)
	grid := GridRect(graphRect, measureAll(s, binLabels), measureAll(s, tickLabels))

	drawGrid(s, grid, len(ticks), true)
	drawLeftLabels(s, grid, tickLabels, false)
	drawBottomLabels(s, grid, binLabels, true)

	// Bars
	slot := grid.W / float64(n)
	unit := grid.H / axisMax
	for b, count := range counts {
		h := float64(count) * unit
		x0 := grid.X + float64(b)*slot + slot*slotInset/2
		y0 := grid.Y + grid.H - h
		drawOutlined(s, rectShape{Rect{x0, y0, slot * (1 - slotInset), h}}, c.palette[b%len(c.palette)])
	}
	return nil
}

func extrema(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// binCounts distributes the values over n equal-width buckets across
// [lo, hi]. Values equal to hi land in the last bucket. Constant input
// (lo == hi) collapses into the first bucket.
func binCounts(values []float64, lo, hi float64, n int) []int {
	width := (hi - lo) / float64(n)
	if width == 0 {
		width = 1
	}
	counts := make([]int, n)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return counts
}
