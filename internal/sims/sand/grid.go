package sand

import (
	"fmt"

	"falling-sand/internal/core"
)

// Grid owns a rectangle of materials and advances them one tick at a time.
// All access goes through the bounds-checked accessors; the backing storage
// is never handed out.
type Grid struct {
	cells *core.ByteGrid
	rng   *core.RNG

	// stamp records the generation in which a coordinate was last resolved
	// by side flow. A coordinate belongs to the current tick's update set
	// iff its stamp equals gen.
	stamp []uint32
	gen   uint32
	ticks uint64

	cands [2]int
}

// NewGrid returns a grid of empty cells. A nil rng seeds a fresh generator
// with zero.
func NewGrid(w, h int, rng *core.RNG) *Grid {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	cells := core.NewByteGrid(w, h)
	return &Grid{
		cells: cells,
		rng:   rng,
		stamp: make([]uint32, cells.Width()*cells.Height()),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.Width() }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.Height() }

// Ticks returns the number of completed ticks since creation or Reset.
func (g *Grid) Ticks() uint64 { return g.ticks }

// Cell returns the material at (x, y); ok is false outside the grid.
func (g *Grid) Cell(x, y int) (m Material, ok bool) {
	v, ok := g.cells.At(x, y)
	return Material(v), ok
}

// SetCell writes m at (x, y). Writes outside the grid are ignored.
func (g *Grid) SetCell(x, y int, m Material) {
	g.cells.Set(x, y, uint8(m))
}

// Reset empties every cell and restarts the tick counter.
func (g *Grid) Reset() {
	g.cells.Clear()
	for i := range g.stamp {
		g.stamp[i] = 0
	}
	g.gen = 0
	g.ticks = 0
}

// Snapshot copies the raw cell values into dst in row-major order.
func (g *Grid) Snapshot(dst []uint8) int { return g.cells.CopyTo(dst) }

// Tick advances the grid by one step and returns the number of cell swaps it
// performed. It panics with an error wrapping ErrUnsupportedMaterial when a
// non-static cell has no update rule.
func (g *Grid) Tick() int {
	g.beginTick()
	moves := 0
	w, h := g.Width(), g.Height()
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			m := g.at(x, y)
			if m.IsStatic() || g.resolved(x, y) {
				continue
			}
			switch m.Phase() {
			case PhaseSolid:
				if g.fall(x, y) {
					moves++
				}
			case PhaseLiquid:
				if g.fall(x, y) || g.flow(x, y) {
					moves++
				}
			default:
				panic(fmt.Errorf("%w: %s has no update rule at (%d,%d)", ErrUnsupportedMaterial, m, x, y))
			}
		}
	}
	g.ticks++
	return moves
}

func (g *Grid) beginTick() {
	g.gen++
	if g.gen == 0 {
		for i := range g.stamp {
			g.stamp[i] = 0
		}
		g.gen = 1
	}
}

func (g *Grid) resolved(x, y int) bool {
	return g.stamp[g.cells.Index(x, y)] == g.gen
}

func (g *Grid) markResolved(x, y int) {
	g.stamp[g.cells.Index(x, y)] = g.gen
}

// at reads a cell the caller has already bounds-checked.
func (g *Grid) at(x, y int) Material {
	v, _ := g.cells.At(x, y)
	return Material(v)
}

// fall moves the cell at (x, y) one row down, straight if possible and
// otherwise onto a random open diagonal. It reports whether the cell moved.
func (g *Grid) fall(x, y int) bool {
	if y >= g.Height()-1 {
		return false
	}
	m := g.at(x, y)
	below := y + 1
	if m.CanDisplace(g.at(x, below)) {
		g.cells.Swap(x, y, x, below)
		return true
	}

	cands := g.cands[:0]
	if x > 0 && g.canSlide(m, x-1, y) {
		cands = append(cands, x-1)
	}
	if x < g.Width()-1 && g.canSlide(m, x+1, y) {
		cands = append(cands, x+1)
	}
	if len(cands) == 0 {
		return false
	}
	nx := core.Pick(g.rng, cands)
	g.cells.Swap(x, y, nx, below)
	return true
}

// canSlide reports whether m can fall diagonally into column nx. Both the
// diagonal target and the neighbour beside the mover must be displaceable.
func (g *Grid) canSlide(m Material, nx, y int) bool {
	return m.CanDisplace(g.at(nx, y+1)) && m.CanDisplace(g.at(nx, y))
}

// flow moves a liquid that could not fall one column sideways, preferring
// the direction it last moved in when both sides are open.
func (g *Grid) flow(x, y int) bool {
	m := g.at(x, y)
	cands := g.cands[:0]
	if x > 0 && m.CanDisplace(g.at(x-1, y)) {
		cands = append(cands, x-1)
	}
	if x < g.Width()-1 && m.CanDisplace(g.at(x+1, y)) {
		cands = append(cands, x+1)
	}
	if len(cands) == 2 {
		switch m.FlowBias() {
		case FlowLeft:
			cands = cands[:1]
		case FlowRight:
			cands = cands[1:]
		}
	}
	if len(cands) == 0 {
		return false
	}

	nx := core.Pick(g.rng, cands)
	bias := FlowRight
	if nx < x {
		bias = FlowLeft
	}
	moved, err := m.WithFlowBias(bias)
	if err != nil {
		panic(err)
	}
	g.SetCell(x, y, g.at(nx, y))
	g.SetCell(nx, y, moved)
	g.markResolved(nx, y)
	return true
}
