package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/tinywasm/chart/errs"
	. "github.com/tinywasm/fmt"
)

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B int
}

func ColorRGB(r, g, b int) Color {
	return Color{r, g, b}
}

// ColorHex parses a "#rrggbb" string into a Color.
func ColorHex(s string) (Color, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return Color{}, errs.New("color:", s, "is not #rrggbb")
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Color{}, errs.New("color:", s, "is not #rrggbb")
	}
	return Color{int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}

// DefaultPalette is assigned to data marks cyclically when no palette is set.
var DefaultPalette = []Color{
	ColorRGB(50, 100, 200),
	ColorRGB(200, 100, 50),
	ColorRGB(50, 200, 100),
	ColorRGB(160, 80, 200),
	ColorRGB(220, 180, 40),
	ColorRGB(60, 180, 200),
	ColorRGB(200, 60, 120),
	ColorRGB(120, 120, 120),
}

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultBins   = 10

	margin       = 10.0
	labelGap     = 4.0
	legendGap    = 4.0
	outlineWidth = 1.0
	slotInset    = 0.2 // fraction of a category slot left empty around bars
	pointRadius  = 4.0
)

var (
	outlineColor = ColorRGB(60, 60, 60)
	gridColor    = ColorRGB(220, 220, 220)
	textColor    = ColorRGB(0, 0, 0)
)

// formatValue prints axis and mark labels without trailing noise.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return Sprintf("%.0f", v)
	}
	return Sprintf("%.2f", v)
}
