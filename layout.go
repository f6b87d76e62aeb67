package chart

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Size is a measured text bounding box.
type Size struct {
	W, H float64
}

func measureAll(m TextMeasurer, labels []string) []Size {
	sizes := make([]Size, len(labels))
	for i, s := range labels {
		w, h := m.MeasureText(s)
		sizes[i] = Size{w, h}
	}
	return sizes
}

func maxWidth(sizes []Size) float64 {
	max := 0.0
	for _, s := range sizes {
		if s.W > max {
			max = s.W
		}
	}
	return max
}

func maxHeight(sizes []Size) float64 {
	max := 0.0
	for _, s := range sizes {
		if s.H > max {
			max = s.H
		}
	}
	return max
}

// TitleRect is the full-width strip at the top of the canvas. Its height is
// zero for an empty title, so content below never shifts when a title is
// added or removed at zero size.
func TitleRect(title string, canvasWidth float64, m TextMeasurer) Rect {
	if title == "" {
		return Rect{0, 0, canvasWidth, 0}
	}
	_, h := m.MeasureText(title)
	return Rect{0, 0, canvasWidth, 2*margin + h}
}

// LegendRect is the full-width strip at the bottom of the canvas. A
// suppressed legend yields a zero-height rectangle at the bottom edge, so
// every rectangle above it is unaffected by the toggle.
func LegendRect(canvasWidth, canvasHeight float64, labelMetrics []Size, display bool) Rect {
	h := 0.0
	if display {
		h = 2*margin + maxHeight(labelMetrics)
	}
	return Rect{0, canvasHeight - h, canvasWidth, h}
}

// GraphRect fills the vertical gap between the title bottom and the legend
// top, full width minus the side margins.
func GraphRect(title Rect, canvasWidth, canvasHeight float64, legend Rect) Rect {
	top := title.Y + title.H
	return Rect{margin, top, canvasWidth - 2*margin, legend.Y - top}
}

// GridRect shrinks the graph rectangle by the margins plus a left gutter
// wide enough for the y-axis labels and a bottom gutter tall enough for the
// x-axis labels, so axis text never collides with plotted data.
func GridRect(graph Rect, xLabelMetrics, yLabelMetrics []Size) Rect {
	left := margin + maxWidth(yLabelMetrics)
	bottom := margin + maxHeight(xLabelMetrics)
	return Rect{
		X: graph.X + left,
		Y: graph.Y + margin,
		W: graph.W - left - margin,
		H: graph.H - margin - bottom,
	}
}

// drawGrid draws lineCount evenly spaced reference lines across the
// rectangle, horizontal when horizontal is true, in a muted color beneath
// the data marks.
func drawGrid(s Surface, r Rect, lineCount int, horizontal bool) {
	if lineCount < 2 {
		return
	}
	if horizontal {
		for _, y := range Interpolate(r.Y+r.H, r.Y, lineCount) {
			s.Line(r.X, y, r.X+r.W, y, gridColor, 1)
		}
		return
	}
	for _, x := range Interpolate(r.X, r.X+r.W, lineCount) {
		s.Line(x, r.Y, x, r.Y+r.H, gridColor, 1)
	}
}

func drawTitle(s Surface, title string, r Rect) {
	if title == "" {
		return
	}
	w, h := s.MeasureText(title)
	s.Text(title, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, textColor)
}

// LegendEntry pairs a series label with its mark color.
type LegendEntry struct {
	Label string
	Color Color
}

// drawLegend lays the entries out horizontally, centered as a block inside
// the legend rectangle. Each swatch is a square sized to the tallest label
// with the label immediately to its right.
func drawLegend(s Surface, r Rect, entries []LegendEntry) {
	if r.H == 0 || len(entries) == 0 {
		return
	}
	sizes := make([]Size, len(entries))
	side := 0.0
	for i, e := range entries {
		w, h := s.MeasureText(e.Label)
		sizes[i] = Size{w, h}
		if h > side {
			side = h
		}
	}
	total := float64(len(entries)-1) * margin
	for _, sz := range sizes {
		total += side + legendGap + sz.W
	}
	x := r.X + (r.W-total)/2
	y := r.Y + (r.H-side)/2
	for i, e := range entries {
		drawOutlined(s, rectShape{Rect{x, y, side, side}}, e.Color)
		s.Text(e.Label, x+side+legendGap, y+(side-sizes[i].H)/2, textColor)
		x += side + legendGap + sizes[i].W + margin
	}
}

// drawLeftLabels writes labels down the left gutter of the grid, bottom to
// top, right-aligned against the grid edge. With mid set the labels sit
// between the grid lines instead of on them.
func drawLeftLabels(s Surface, grid Rect, labels []string, mid bool) {
	var ys []float64
	if mid {
		ys = InterpolateMidpoints(grid.Y+grid.H, grid.Y, len(labels))
	} else {
		ys = Interpolate(grid.Y+grid.H, grid.Y, len(labels))
	}
	for i, label := range labels {
		w, h := s.MeasureText(label)
		s.Text(label, grid.X-labelGap-w, ys[i]-h/2, textColor)
	}
}

// drawBottomLabels writes labels along the bottom gutter, left to right,
// centered on their positions.
func drawBottomLabels(s Surface, grid Rect, labels []string, mid bool) {
	var xs []float64
	if mid {
		xs = InterpolateMidpoints(grid.X, grid.X+grid.W, len(labels))
	} else {
		xs = Interpolate(grid.X, grid.X+grid.W, len(labels))
	}
	for i, label := range labels {
		w, _ := s.MeasureText(label)
		s.Text(label, xs[i]-w/2, grid.Y+grid.H+labelGap, textColor)
	}
}
