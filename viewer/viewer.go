// Package viewer shows a rendered chart in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type game struct {
	img  *ebiten.Image
	w, h int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Show opens a window displaying img and blocks until the window closes.
// Escape closes it too.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	g := &game{img: ebiten.NewImageFromImage(img), w: b.Dx(), h: b.Dy()}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	return ebiten.RunGame(g)
}
