package chart

import (
	"github.com/tinywasm/chart/dataset"
	"github.com/tinywasm/chart/errs"
)

// ScatterChart plots each row as a point using its first two values as
// (x, y). Both axes start at 0 and end on a decade tick at or above the
// data maximum. Points take palette colors cyclically per row; with one
// point per row there is no series to name, so no legend is drawn.
type ScatterChart struct {
	data    *dataset.Table
	title   string
	width   float64
	height  float64
	palette []Color
}

func (c *ScatterChart) Title(t string) *ScatterChart {
	c.title = t
	return c
}

func (c *ScatterChart) Size(w, h float64) *ScatterChart {
	c.width = w
	c.height = h
	return c
}

func (c *ScatterChart) Palette(p []Color) *ScatterChart {
	c.palette = p
	return c
}

func (c *ScatterChart) Draw(s Surface) error {
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
		return errs.New("scatter chart: empty table")
	}
	if err := c.data.RequireColumns(2); err != nil {
		return err
	}

	rows := c.data.Rows()

	// Extents, validated before anything touches the surface
	maxX, maxY := 0.0, 0.0
	for i := 0; i < rows; i++ {
		if v := c.data.Value(i, 0); v > maxX {
			maxX = v
		}
		if v := c.data.Value(i, 1); v > maxY {
			maxY = v
		}
	}
	if maxX <= 0 || maxY <= 0 {
		return errs.New("scatter chart: no positive values")
	}

	// Title
	titleRect := TitleRect(c.title, c.width, s)
	drawTitle(s, c.title, titleRect)

	xTicks := DecadeTicks(maxX, 0)
	yTicks := DecadeTicks(maxY, 0)
	axisMaxX := xTicks[len(xTicks)-1]
	axisMaxY := yTicks[len(yTicks)-1]

	xLabels := make([]string, len(xTicks))
	for i, v := range xTicks {
		xLabels[i] = formatValue(v)
	}
	yLabels := make([]string, len(yTicks))
	for i, v := range yTicks {
		yLabels[i] = formatValue(v)
	}

	// Layout
	legendRect := LegendRect(c.width, c.height, nil, false)
	graphRect := GraphRect(titleRect, c.width, c.height, legendRect)
	grid := GridRect(graphRect, measureAll(s, xLabels), measureAll(s, yLabels))

	// Grid in both orientations
	drawGrid(s, grid, len(yTicks), true)
	drawGrid(s, grid, len(xTicks), false)
	drawLeftLabels(s, grid, yLabels, false)
	drawBottomLabels(s, grid, xLabels, false)

	// Points
	for i := 0; i < rows; i++ {
		px := grid.X + c.data.Value(i, 0)/axisMaxX*grid.W
		py := grid.Y + grid.H - c.data.Value(i, 1)/axisMaxY*grid.H
		drawOutlined(s, circleShape{px, py, pointRadius}, c.palette[i%len(c.palette)])
	}
	return nil
}
