// Package draw implements chart.Surface on a vector canvas and persists
// the result as SVG and optionally PNG.
package draw

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"

	chart "github.com/tinywasm/chart"
)

const fontSize = 11.0

// Canvas is a chart.Surface over a tdewolff vector canvas. Chart
// coordinates have a top-left origin; the canvas has a bottom-left one, so
// every y is flipped on the way in.
type Canvas struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	family *canvas.FontFamily
	height float64
}

// New creates a white canvas of the given size in pixels.
func New(width, height float64) (*Canvas, error) {
	family := canvas.NewFontFamily("sans")
	if err := family.LoadSystemFont("sans-serif", canvas.FontRegular); err != nil {
		return nil, err
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	s := &Canvas{c: c, ctx: ctx, family: family, height: height}

	s.setFill(chart.ColorRGB(255, 255, 255))
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	return s, nil
}

func (s *Canvas) flipY(y float64) float64 {
	return s.height - y
}

func rgba(c chart.Color) color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func (s *Canvas) setFill(c chart.Color) {
	s.ctx.SetFillColor(rgba(c))
	s.ctx.SetStrokeColor(canvas.Transparent)
}

func (s *Canvas) setStroke(c chart.Color, width float64) {
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(rgba(c))
	s.ctx.SetStrokeWidth(width)
}

func (s *Canvas) face(c color.RGBA) *canvas.FontFace {
	return s.family.Face(fontSize, c, canvas.FontRegular, canvas.FontNormal)
}

func (s *Canvas) MeasureText(txt string) (float64, float64) {
	if txt == "" {
		return 0, 0
	}
	line := canvas.NewTextLine(s.face(rgba(chart.ColorRGB(0, 0, 0))), txt, canvas.Left)
	b := line.Bounds()
	return b.W(), b.H()
}

func (s *Canvas) Text(txt string, x, y float64, c chart.Color) {
	line := canvas.NewTextLine(s.face(rgba(c)), txt, canvas.Left)
	b := line.Bounds()
	s.ctx.DrawText(x, s.flipY(y+b.H()), line)
}

func (s *Canvas) FillRect(r chart.Rect, c chart.Color) {
	s.setFill(c)
	s.ctx.DrawPath(r.X, s.flipY(r.Y+r.H), canvas.Rectangle(r.W, r.H))
}

func (s *Canvas) StrokeRect(r chart.Rect, c chart.Color, width float64) {
	s.setStroke(c, width)
	s.ctx.DrawPath(r.X, s.flipY(r.Y+r.H), canvas.Rectangle(r.W, r.H))
}

func (s *Canvas) Line(x1, y1, x2, y2 float64, c chart.Color, width float64) {
	s.setStroke(c, width)
	p := &canvas.Path{}
	p.MoveTo(x1, s.flipY(y1))
	p.LineTo(x2, s.flipY(y2))
	s.ctx.DrawPath(0, 0, p)
}

func (s *Canvas) FillCircle(cx, cy, radius float64, c chart.Color) {
	s.setFill(c)
	s.ctx.DrawPath(cx, s.flipY(cy), canvas.Circle(radius))
}

func (s *Canvas) StrokeCircle(cx, cy, radius float64, c chart.Color, width float64) {
	s.setStroke(c, width)
	s.ctx.DrawPath(cx, s.flipY(cy), canvas.Circle(radius))
}

func (s *Canvas) FillSector(cx, cy, radius, startDeg, sweepDeg float64, c chart.Color) {
	s.setFill(c)
	s.ctx.DrawPath(0, 0, s.sectorPath(cx, cy, radius, startDeg, sweepDeg))
}

func (s *Canvas) StrokeSector(cx, cy, radius, startDeg, sweepDeg float64, c chart.Color, width float64) {
	s.setStroke(c, width)
	s.ctx.DrawPath(0, 0, s.sectorPath(cx, cy, radius, startDeg, sweepDeg))
}

// sectorPath approximates the arc with one segment per degree, which is
// below pixel resolution at chart radii.
func (s *Canvas) sectorPath(cx, cy, radius, startDeg, sweepDeg float64) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(cx, s.flipY(cy))
	steps := int(math.Ceil(math.Abs(sweepDeg)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := (startDeg - sweepDeg*float64(i)/float64(steps)) * math.Pi / 180
		x := cx + radius*math.Cos(a)
		y := cy - radius*math.Sin(a)
		p.LineTo(x, s.flipY(y))
	}
	p.Close()
	return p
}
