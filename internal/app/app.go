//go:build ebiten

package app

import (
	"time"

	"falling-sand/internal/brush"
	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Ebiten calls
// Update at its own rate; the simulation advances on a fixed step.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	brush   *brush.Brush
	writer  brush.CellWriter
	step    *core.FixedStep

	scale    int
	panel    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. It fails when the
// configured brush material cannot be painted.
func New(sim core.Sim, cfg *Config) (*Game, error) {
	b, err := cfg.NewBrush()
	if err != nil {
		return nil, err
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim),
		hud:     ui.NewHUD(sim, cfg.Panel),
		brush:   b,
		step:    core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		panel:   cfg.Panel,
		seed:    cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if w, ok := sim.(brush.CellWriter); ok {
		g.writer = w
	}
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.step.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.Shrink()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.Grow()
	}
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.brush.SelectIndex(i)
		}
	}

	g.handlePointer()

	if g.tickOnce || (!g.paused && g.step.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}

	g.hud.Update(ui.Status{
		Brush:  g.brush.Material().String(),
		Radius: g.brush.Radius(),
		Paused: g.paused,
	})
	return nil
}

func (g *Game) handlePointer() {
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		g.brush.Next()
	case dy < 0:
		g.brush.Prev()
	}

	if g.writer == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	x, y := brush.CellAt(mx, my, g.scale, g.scale)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.brush.Paint(g.writer, x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.brush.Erase(g.writer, x, y)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}
