// Package brush holds the driver-side painting state shared by the GUI and
// terminal front ends: the selected material, its size, and translation from
// screen coordinates to grid cells.
package brush

import (
	"errors"
	"fmt"

	"falling-sand/internal/sims/sand"
)

// ErrNotPlaceable is returned for supported materials a brush cannot paint.
var ErrNotPlaceable = errors.New("material is not placeable")

// MaxRadius bounds the square painted around the cursor.
const MaxRadius = 4

// CellWriter is the single-cell write surface a brush paints through.
type CellWriter interface {
	SetCell(x, y int, m sand.Material)
}

// Brush tracks the material a driver paints with.
type Brush struct {
	palette []sand.Material
	idx     int
	radius  int
}

// New returns a brush cycling over the placeable materials, starting on sand.
func New() *Brush {
	b := &Brush{palette: []sand.Material{sand.Stone, sand.Sand, sand.Water, sand.Lava}}
	b.Select(sand.Sand)
	return b
}

// NewWith returns a brush starting on m. Unknown materials fail with an error
// wrapping sand.ErrUnsupportedMaterial; empty fails with ErrNotPlaceable.
func NewWith(m sand.Material) (*Brush, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := New()
	if !b.Select(m) {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaceable, m)
	}
	return b, nil
}

// Material returns the selected material.
func (b *Brush) Material() sand.Material { return b.palette[b.idx] }

// Radius returns the half-width of the painted square.
func (b *Brush) Radius() int { return b.radius }

// Next selects the following material, wrapping to the first.
func (b *Brush) Next() { b.idx = (b.idx + 1) % len(b.palette) }

// Prev selects the preceding material, wrapping to the last.
func (b *Brush) Prev() { b.idx = (b.idx - 1 + len(b.palette)) % len(b.palette) }

// Select picks m if it is placeable and reports whether it was.
func (b *Brush) Select(m sand.Material) bool {
	for i, p := range b.palette {
		if p.Kind() == m.Kind() {
			b.idx = i
			return true
		}
	}
	return false
}

// SelectIndex picks the i-th placeable material (0-based).
func (b *Brush) SelectIndex(i int) bool {
	if i < 0 || i >= len(b.palette) {
		return false
	}
	b.idx = i
	return true
}

// Grow enlarges the brush up to MaxRadius.
func (b *Brush) Grow() {
	if b.radius < MaxRadius {
		b.radius++
	}
}

// Shrink reduces the brush down to a single cell.
func (b *Brush) Shrink() {
	if b.radius > 0 {
		b.radius--
	}
}

// Paint writes the selected material around (x, y).
func (b *Brush) Paint(w CellWriter, x, y int) { b.stamp(w, x, y, b.Material()) }

// Erase clears the cells around (x, y).
func (b *Brush) Erase(w CellWriter, x, y int) { b.stamp(w, x, y, sand.Empty) }

func (b *Brush) stamp(w CellWriter, x, y int, m sand.Material) {
	for dy := -b.radius; dy <= b.radius; dy++ {
		for dx := -b.radius; dx <= b.radius; dx++ {
			w.SetCell(x+dx, y+dy, m)
		}
	}
}

// CellAt converts a screen position into grid coordinates for cells drawn
// cw by ch units large. Positions left of or above the origin map to
// negative cells, which writers ignore.
func CellAt(px, py, cw, ch int) (int, int) {
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return floorDiv(px, cw), floorDiv(py, ch)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
