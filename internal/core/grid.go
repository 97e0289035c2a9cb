package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Row 0 is the top of the grid; y grows downwards.
type ByteGrid struct {
	w, h int
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
	return &ByteGrid{w: w, h: h, data: make([]uint8, w*h)}
}

// Width returns the number of columns.
func (g *ByteGrid) Width() int { return g.w }

// Height returns the number of rows.
func (g *ByteGrid) Height() int { return g.h }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Index returns the linear slice index for coordinates (x, y). The caller is
// responsible for bounds.
func (g *ByteGrid) Index(x, y int) int { return y*g.w + x }

// At returns the value stored at (x, y). ok is false outside the grid.
func (g *ByteGrid) At(x, y int) (v uint8, ok bool) {
	if !g.In(x, y) {
		return 0, false
	}
	return g.data[y*g.w+x], true
}

// Set writes v at (x, y). Writes outside the grid are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.w+x] = v
}

// Swap exchanges the values at two coordinates. It does nothing unless both
// coordinates are inside the grid.
func (g *ByteGrid) Swap(x0, y0, x1, y1 int) {
	if !g.In(x0, y0) || !g.In(x1, y1) {
		return
	}
	a, b := y0*g.w+x0, y1*g.w+x1
	g.data[a], g.data[b] = g.data[b], g.data[a]
}

// CopyTo copies the cell values into dst and returns the number copied.
func (g *ByteGrid) CopyTo(dst []uint8) int { return copy(dst, g.data) }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
