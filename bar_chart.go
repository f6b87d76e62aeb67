package chart

import (
	"github.com/tinywasm/chart/dataset"
	"github.com/tinywasm/chart/errs"
)

// BarChart draws one bar per table cell: rows are categories, columns are
// series. Clustered places the series of a category side by side, stacked
// piles them cumulatively. Orientation swaps the categorical and numeric
// axes and mirrors the rectangle math. Values must be non-negative; a
// table with a negative cell is rejected rather than clamped.
type BarChart struct {
	data       *dataset.Table
	title      string
	width      float64
	height     float64
	palette    []Color
	horizontal bool
	stacked    bool
	hideLegend bool
}

func (c *BarChart) Title(t string) *BarChart {
	c.title = t
	return c
}

func (c *BarChart) Size(w, h float64) *BarChart {
	c.width = w
	c.height = h
	return c
}

func (c *BarChart) Palette(p []Color) *BarChart {
	c.palette = p
	return c
}

func (c *BarChart) Horizontal() *BarChart {
	c.horizontal = true
	return c
}

func (c *BarChart) Stacked() *BarChart {
	c.stacked = true
	return c
}

func (c *BarChart) Legend(show bool) *BarChart {
	c.hideLegend = !show
	return c
}

func (c *BarChart) Draw(s Surface) error {
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
		return errs.New("bar chart: empty table")
	}

	rows := c.data.Rows()
	cols := c.data.Columns()

	// Scale: stacked bars reach the per-category sum, clustered bars the
	// largest single value. Validated before anything touches the surface
	// so a rejected table leaves it blank.
	maxVal := 0.0
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			v := c.data.Value(i, j)
			if v < 0 {
				return errs.New("bar chart: negative value in row", i)
			}
			sum += v
			if !c.stacked && v > maxVal {
				maxVal = v
			}
		}
		if c.stacked && sum > maxVal {
			maxVal = sum
		}
	}
	if maxVal <= 0 {
		return errs.New("bar chart: no positive values")
	}
	ticks := DecadeTicks(maxVal, 0)

	// Title
	titleRect := TitleRect(c.title, c.width, s)
	drawTitle(s, c.title, titleRect)
	axisMax := ticks[len(ticks)-1]

	// Labels
	tickLabels := make([]string, len(ticks))
	for i, v := range ticks {
		tickLabels[i] = formatValue(v)
	}
	catLabels := make([]string, rows)
	for i := range catLabels {
		catLabels[i] = c.data.RowLabel(i)
	}

	entries := make([]LegendEntry, cols)
	legendLabels := make([]string, cols)
	for j := 0; j < cols; j++ {
		legendLabels[j] = c.data.ColLabel(j)
		entries[j] = LegendEntry{Label: legendLabels[j], Color: c.palette[j%len(c.palette)]}
	}

	// Layout
	legendRect := LegendRect(c.width, c.height, measureAll(s, legendLabels), !c.hideLegend)
	graphRect := GraphRect(titleRect, c.width, c.height, legendRect)

	xLabels, yLabels := catLabels, tickLabels
	if c.horizontal {
		xLabels, yLabels = tickLabels, catLabels
	}
	grid := GridRect(graphRect, measureAll(s, xLabels), measureAll(s, yLabels))

	// Grid and axis labels
	if c.horizontal {
		drawGrid(s, grid, len(ticks), false)
		drawLeftLabels(s, grid, reversed(catLabels), true)
		drawBottomLabels(s, grid, tickLabels, false)
	} else {
		drawGrid(s, grid, len(ticks), true)
		drawLeftLabels(s, grid, tickLabels, false)
		drawBottomLabels(s, grid, catLabels, true)
	}

	// Bars
	if c.horizontal {
		c.drawHorizontal(s, grid, axisMax)
	} else {
		c.drawVertical(s, grid, axisMax)
	}

	// Legend
	drawLegend(s, legendRect, entries)
	return nil
}

func (c *BarChart) drawVertical(s Surface, grid Rect, axisMax float64) {
	rows := c.data.Rows()
	cols := c.data.Columns()
	slot := grid.W / float64(rows)
	unit := grid.H / axisMax

	for i := 0; i < rows; i++ {
		if c.stacked {
			x0 := grid.X + float64(i)*slot + slot*slotInset/2
			bw := slot * (1 - slotInset)
			base := grid.Y + grid.H
			for j := 0; j < cols; j++ {
				h := c.data.Value(i, j) * unit
				base -= h
				drawOutlined(s, rectShape{Rect{x0, base, bw, h}}, c.palette[j%len(c.palette)])
			}
			continue
		}
		bw := slot * (1 - slotInset) / float64(cols)
		for j := 0; j < cols; j++ {
			v := c.data.Value(i, j)
			h := v * unit
			x0 := grid.X + float64(i)*slot + slot*slotInset/2 + float64(j)*bw
			y0 := grid.Y + grid.H - h
			drawOutlined(s, rectShape{Rect{x0, y0, bw, h}}, c.palette[j%len(c.palette)])

			// Value on top
			label := formatValue(v)
			lw, lh := s.MeasureText(label)
			s.Text(label, x0+(bw-lw)/2, y0-lh-labelGap/2, textColor)
		}
	}
}

func (c *BarChart) drawHorizontal(s Surface, grid Rect, axisMax float64) {
	rows := c.data.Rows()
	cols := c.data.Columns()
	slot := grid.H / float64(rows)
	unit := grid.W / axisMax

	for i := 0; i < rows; i++ {
		if c.stacked {
			y0 := grid.Y + float64(i)*slot + slot*slotInset/2
			bh := slot * (1 - slotInset)
			base := grid.X
			for j := 0; j < cols; j++ {
				w := c.data.Value(i, j) * unit
				drawOutlined(s, rectShape{Rect{base, y0, w, bh}}, c.palette[j%len(c.palette)])
				base += w
			}
			continue
		}
		bh := slot * (1 - slotInset) / float64(cols)
		for j := 0; j < cols; j++ {
			v := c.data.Value(i, j)
			w := v * unit
			y0 := grid.Y + float64(i)*slot + slot*slotInset/2 + float64(j)*bh
			drawOutlined(s, rectShape{Rect{grid.X, y0, w, bh}}, c.palette[j%len(c.palette)])

			// Value at the bar end
			label := formatValue(v)
			_, lh := s.MeasureText(label)
			s.Text(label, grid.X+w+labelGap/2, y0+(bh-lh)/2, textColor)
		}
	}
}

func reversed(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[len(labels)-1-i] = l
	}
	return out
}
