package sand

import (
	"falling-sand/internal/core"
)

// World adapts a Grid to the core.Sim contract used by the drivers.
type World struct {
	cfg Config

	grid    *Grid
	rng     *core.RNG
	display []uint8

	lastMoves int

	params      core.ParameterSnapshot
	paramsValid bool
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
// The world starts empty; call Reset to build the configured scene.
func NewWithConfig(cfg Config) *World {
	if _, ok := scenes[cfg.Scene]; !ok {
		cfg.Scene = SceneEmpty
	}
	rng := core.NewRNG(cfg.Seed)
	grid := NewGrid(cfg.Width, cfg.Height, rng)
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	return &World{
		cfg:     cfg,
		grid:    grid,
		rng:     rng,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Cells exposes a display copy of the grid; writing to it does not change
// the simulation.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Ticks returns the number of steps since the last reset.
func (w *World) Ticks() uint64 { return w.grid.Ticks() }

// LastMoves returns the number of swaps performed by the most recent step.
func (w *World) LastMoves() int { return w.lastMoves }

// Cell returns the material at (x, y); ok is false outside the grid.
func (w *World) Cell(x, y int) (Material, bool) { return w.grid.Cell(x, y) }

// SetCell writes m at (x, y). Writes outside the grid are ignored.
func (w *World) SetCell(x, y int, m Material) {
	w.grid.SetCell(x, y, m)
	if w.grid.cells.In(x, y) {
		w.display[w.grid.cells.Index(x, y)] = uint8(m)
		w.paramsValid = false
	}
}

// Reset rebuilds the configured scene. A zero seed reuses the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Reset()
	scenes[w.cfg.Scene](w.grid, w.rng)
	w.lastMoves = 0
	w.rebuildDisplay()
}

// Step advances the grid by one tick.
func (w *World) Step() {
	w.lastMoves = w.grid.Tick()
	w.rebuildDisplay()
}

// Census counts the cells of each kind.
func (w *World) Census() map[Kind]int {
	counts := make(map[Kind]int)
	for y := 0; y < w.grid.Height(); y++ {
		for x := 0; x < w.grid.Width(); x++ {
			m, _ := w.grid.Cell(x, y)
			counts[m.Kind()]++
		}
	}
	return counts
}

func (w *World) rebuildDisplay() {
	w.grid.Snapshot(w.display)
	w.paramsValid = false
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
