package draw

import (
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Save writes the canvas as SVG at path and, when rasterPath is not empty,
// as PNG at rasterPath. One canvas unit maps to one pixel.
func (s *Canvas) Save(path, rasterPath string) error {
	if err := renderers.Write(path, s.c); err != nil {
		return err
	}
	if rasterPath != "" {
		return renderers.Write(rasterPath, s.c, canvas.DPMM(1.0))
	}
	return nil
}

// Rasterize renders the canvas to an in-memory image for the preview
// window.
func (s *Canvas) Rasterize() image.Image {
	return rasterizer.Draw(s.c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}
