// Package render converts cell buffers into pixels for windowed front-ends.
package render

import (
	"image/color"

	"tgol/pkg/core"
)

// Palette holds the colors of live and dead cells.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette draws white cells on black.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Dead:  color.RGBA{A: 0xff},
}

// fillRGBA writes four bytes per cell into buf. buf must hold 4*len(cells)
// bytes.
func fillRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		px := buf[i*4 : i*4+4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

// Frame renders the current cells of sim into buf, growing buf when the
// grid no longer fits, and returns the buffer it wrote.
func Frame(sim core.Sim, buf []byte, p Palette) []byte {
	cells := sim.Cells()
	size := sim.Size()
	if len(cells) != size.W*size.H {
		return buf[:0]
	}
	if cap(buf) < 4*len(cells) {
		buf = make([]byte, 4*len(cells))
	}
	buf = buf[:4*len(cells)]
	fillRGBA(buf, cells, p)
	return buf
}
