package core

import "mad-shapes/pkg/shape"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Cell (x, y) of a pattern maps to index y*W+x.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies on the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Paint writes v into every on-grid cell of p.
func (g *ByteGrid) Paint(p *shape.Pattern, v uint8) {
	for _, c := range p.Cells() {
		if g.Contains(c.X, c.Y) {
			g.data[g.Index(c.X, c.Y)] = v
		}
	}
}

// PaintLabels clears the grid and paints the i-th pattern of m with label
// i+1. Labels wrap past 255 so they stay non-zero.
func (g *ByteGrid) PaintLabels(m *shape.Multipattern) {
	g.Clear()
	m.Each(func(i int, p *shape.Pattern) {
		g.Paint(p, uint8(i%255)+1)
	})
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
