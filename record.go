package chart

// Recorder is a Surface that stores every emitted primitive instead of
// drawing it. Renderer tests assert on the recorded commands rather than on
// rendered pixels. Text is measured with a fixed-size font model: CharWidth
// per rune and LineHeight tall.
type Recorder struct {
	CharWidth  float64
	LineHeight float64

	Rects   []RectOp
	Lines   []LineOp
	Circles []CircleOp
	Sectors []SectorOp
	Texts   []TextOp
}

type RectOp struct {
	Rect   Rect
	Color  Color
	Stroke bool
	Width  float64
}

type LineOp struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

type CircleOp struct {
	CX, CY, Radius float64
	Color          Color
	Stroke         bool
	Width          float64
}

type SectorOp struct {
	CX, CY, Radius float64
	Start, Sweep   float64
	Color          Color
	Stroke         bool
	Width          float64
}

type TextOp struct {
	S     string
	X, Y  float64
	Color Color
}

func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 7, LineHeight: 12}
}

func (r *Recorder) MeasureText(s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	return float64(len([]rune(s))) * r.CharWidth, r.LineHeight
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Rects = append(r.Rects, RectOp{Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect Rect, c Color, width float64) {
	r.Rects = append(r.Rects, RectOp{Rect: rect, Color: c, Stroke: true, Width: width})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r.Lines = append(r.Lines, LineOp{x1, y1, x2, y2, c, width})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.Circles = append(r.Circles, CircleOp{CX: cx, CY: cy, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius float64, c Color, width float64) {
	r.Circles = append(r.Circles, CircleOp{CX: cx, CY: cy, Radius: radius, Color: c, Stroke: true, Width: width})
}

func (r *Recorder) FillSector(cx, cy, radius, startDeg, sweepDeg float64, c Color) {
	r.Sectors = append(r.Sectors, SectorOp{CX: cx, CY: cy, Radius: radius, Start: startDeg, Sweep: sweepDeg, Color: c})
}

func (r *Recorder) StrokeSector(cx, cy, radius, startDeg, sweepDeg float64, c Color, width float64) {
	r.Sectors = append(r.Sectors, SectorOp{CX: cx, CY: cy, Radius: radius, Start: startDeg, Sweep: sweepDeg, Color: c, Stroke: true, Width: width})
}

func (r *Recorder) Text(s string, x, y float64, c Color) {
	r.Texts = append(r.Texts, TextOp{s, x, y, c})
}

// FilledRects returns the fill operations only, in draw order.
func (r *Recorder) FilledRects() []RectOp {
	var out []RectOp
	for _, op := range r.Rects {
		if !op.Stroke {
			out = append(out, op)
		}
	}
	return out
}

// FilledCircles returns the fill operations only, in draw order.
func (r *Recorder) FilledCircles() []CircleOp {
	var out []CircleOp
	for _, op := range r.Circles {
		if !op.Stroke {
			out = append(out, op)
		}
	}
	return out
}

// FilledSectors returns the fill operations only, in draw order.
func (r *Recorder) FilledSectors() []SectorOp {
	var out []SectorOp
	for _, op := range r.Sectors {
		if !op.Stroke {
			out = append(out, op)
		}
	}
	return out
}

// HasText reports whether s was drawn.
func (r *Recorder) HasText(s string) bool {
	for _, op := range r.Texts {
		if op.S == s {
			return true
		}
	}
	return false
}
