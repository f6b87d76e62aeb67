package chart

import (
	"github.com/tinywasm/chart/dataset"
	"github.com/tinywasm/chart/errs"
)

// PieChart draws the first table row as sectors. Extra rows are not an
// error but only the first one is rendered; the CLI warns about the rest.
// Sectors are drawn in reverse column order starting at 90° (top) and
// proceeding clockwise, so the legend-to-sector color order matches
// reading order.
type PieChart struct {
	data       *dataset.Table
	title      string
	width      float64
	height     float64
	palette    []Color
	hideLegend bool
}

func (c *PieChart) Title(t string) *PieChart {
	c.title = t
	return c
}

func (c *PieChart) Size(w, h float64) *PieChart {
	c.width = w
	c.height = h
	return c
}

func (c *PieChart) Palette(p []Color) *PieChart {
	c.palette = p
	return c
}

func (c *PieChart) Legend(show bool) *PieChart {
	c.hideLegend = !show
	return c
}

func (c *PieChart) Draw(s Surface) error {
	if c.width == 0 {
		c.width = DefaultWidth
	}
	if c.height == 0 {
		c.height = DefaultHeight
	}
	if len(c.palette) == 0 {
		c.palette = DefaultPalette
	}
	if c.data == nil || c.data.Rows() == 0 {
		return errs.New("pie chart: empty table")
	}

	cols := c.data.Columns()
	total := 0.0
	for j := 0; j < cols; j++ {
		total += c.data.Value(0, j)
	}
	if total <= 0 {
		return errs.New("pie chart: sum of values must be positive")
	}

	// Title
	titleRect := TitleRect(c.title, c.width, s)
	drawTitle(s, c.title, titleRect)

	// Legend entries in reading order
	entries := make([]LegendEntry, cols)
	labels := make([]string, cols)
	for j := 0; j < cols; j++ {
		labels[j] = c.data.ColLabel(j)
		entries[j] = LegendEntry{Label: labels[j], Color: c.palette[j%len(c.palette)]}
	}

	// Layout
	legendRect := LegendRect(c.width, c.height, measureAll(s, labels), !c.hideLegend)
	graphRect := GraphRect(titleRect, c.width, c.height, legendRect)

	radius := graphRect.H / 2
	if graphRect.W < graphRect.H {
		radius = graphRect.W / 2
	}
	radius -= margin
	cx := graphRect.X + graphRect.W/2
	cy := graphRect.Y + graphRect.H/2

	// Sectors
	start := 90.0
	for j := cols - 1; j >= 0; j-- {
		sweep := c.data.Value(0, j) / total * 360
		drawOutlined(s, sectorShape{cx, cy, radius, start, sweep}, c.palette[j%len(c.palette)])
		start -= sweep
	}

	// Legend
	drawLegend(s, legendRect, entries)
	return nil
}
