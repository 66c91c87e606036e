//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tgol/pkg/core"
)

// GridPainter keeps one RGBA image in sync with a simulation's cells.
type GridPainter struct {
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter returns a painter using palette p.
func NewGridPainter(p Palette) *GridPainter {
	return &GridPainter{palette: p}
}

// Blit uploads the current cells of sim and draws them scaled onto dst. The
// backing image is reallocated when the grid changes shape.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	gp.buf = Frame(sim, gp.buf, gp.palette)
	if len(gp.buf) == 0 {
		return
	}
	size := sim.Size()
	if gp.img == nil || gp.size != size {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.size = size
		gp.img = ebiten.NewImage(size.W, size.H)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
