package chart

// TextMeasurer reports the bounding box of a label under the surface's
// font before anything is drawn. An empty string measures 0×0.
type TextMeasurer interface {
	MeasureText(s string) (w, h float64)
}

// Surface is the drawing target for every renderer. Coordinates have the
// origin at the top-left corner with y growing downwards. Sector angles are
// degrees with 0° at the right and 90° at the top; a positive sweep
// proceeds clockwise on screen.
type Surface interface {
	TextMeasurer

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, width float64)
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	FillCircle(cx, cy, radius float64, c Color)
	StrokeCircle(cx, cy, radius float64, c Color, width float64)
	FillSector(cx, cy, radius, startDeg, sweepDeg float64, c Color)
	StrokeSector(cx, cy, radius, startDeg, sweepDeg float64, c Color, width float64)

	// Text draws s with the top-left corner of its bounding box at (x, y).
	Text(s string, x, y float64, c Color)
}

// shape abstracts the data marks so they all share the fill-then-outline
// style.
type shape interface {
	fill(s Surface, c Color)
	stroke(s Surface, c Color, width float64)
}

type rectShape struct{ Rect }

func (r rectShape) fill(s Surface, c Color)                  { s.FillRect(r.Rect, c) }
func (r rectShape) stroke(s Surface, c Color, width float64) { s.StrokeRect(r.Rect, c, width) }

type circleShape struct {
	cx, cy, radius float64
}

func (o circleShape) fill(s Surface, c Color) { s.FillCircle(o.cx, o.cy, o.radius, c) }
func (o circleShape) stroke(s Surface, c Color, width float64) {
	s.StrokeCircle(o.cx, o.cy, o.radius, c, width)
}

type sectorShape struct {
	cx, cy, radius, start, sweep float64
}

func (o sectorShape) fill(s Surface, c Color) {
	s.FillSector(o.cx, o.cy, o.radius, o.start, o.sweep, c)
}
func (o sectorShape) stroke(s Surface, c Color, width float64) {
	s.StrokeSector(o.cx, o.cy, o.radius, o.start, o.sweep, c, width)
}

// drawOutlined fills a mark and strokes it with the shared outline color,
// the uniform look of every data mark across chart types.
func drawOutlined(s Surface, sh shape, fill Color) {
	sh.fill(s, fill)
	sh.stroke(s, outlineColor, outlineWidth)
}
