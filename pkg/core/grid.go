package core

import (
	"fmt"
	"math"
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Callers
// validate dimensions first; non-positive values are clamped to 1.
//
// Allocation failure is fatal. A size whose cell count overflows int panics
// here, and an out-of-memory condition aborts the process in the runtime.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w > math.MaxInt/h {
		panic(fmt.Sprintf("core: cannot allocate %dx%d grid", w, h))
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// CopyOverlap copies the rectangle shared by src and g, anchored at the
// origin, from src into g. Cells of g outside that rectangle are untouched.
func (g *ByteGrid) CopyOverlap(src *ByteGrid) {
	w := min(g.W, src.W)
	h := min(g.H, src.H)
	for y := 0; y < h; y++ {
		copy(g.data[y*g.W:y*g.W+w], src.data[y*src.W:y*src.W+w])
	}
}
