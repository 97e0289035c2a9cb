// Package term runs a sand world on a tcell screen. Each cell is drawn two
// columns wide so the grid looks roughly square; a status line sits below it.
package term

import (
	"context"
	"fmt"
	"time"

	"falling-sand/internal/brush"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	cellCols   = 2
	frameDelay = 33 * time.Millisecond
)

// World is the part of a sand world the driver reads and paints.
type World interface {
	core.Sim
	Cell(x, y int) (sand.Material, bool)
	SetCell(x, y int, m sand.Material)
	Ticks() uint64
}

// Driver owns the screen loop. Only the goroutine running Run touches the
// world; input is forwarded to it over a channel.
type Driver struct {
	screen tcell.Screen
	world  World
	brush  *brush.Brush
	step   *core.FixedStep

	seed   int64
	paused bool

	styles map[sand.Material]tcell.Style
}

// New returns a driver for an initialised screen. A nil brush starts on sand.
func New(screen tcell.Screen, world World, b *brush.Brush, tps int, seed int64) *Driver {
	if b == nil {
		b = brush.New()
	}
	d := &Driver{
		screen: screen,
		world:  world,
		brush:  b,
		step:   core.NewFixedStep(tps),
		seed:   seed,
		styles: make(map[sand.Material]tcell.Style),
	}
	return d
}

// Run polls input and advances the world until the user quits or ctx ends.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := d.pollEvents(ctx)
	frames := time.NewTicker(frameDelay)
	defer frames.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev) {
				return nil
			}
		case <-frames.C:
			if !d.paused && d.step.ShouldStep() {
				d.world.Step()
			}
			d.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or ctx
// ends. The returned channel is closed when the pump exits.
func (d *Driver) pollEvents(ctx context.Context) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := d.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// HandleEvent applies one input event and reports whether the user quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		d.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

func (d *Driver) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		d.brush.Next()
	case tcell.KeyBacktab:
		d.brush.Prev()
	case tcell.KeyEnter:
		d.paused = false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			d.paused = !d.paused
		case 'n':
			d.world.Step()
		case 'r':
			d.reset(d.seed)
		case 's':
			d.reset(time.Now().UnixNano())
		case '[':
			d.brush.Shrink()
		case ']':
			d.brush.Grow()
		case '1', '2', '3', '4':
			d.brush.SelectIndex(int(r - '1'))
		}
	}
	return false
}

func (d *Driver) handleMouse(px, py int, buttons tcell.ButtonMask) {
	switch {
	case buttons&tcell.WheelUp != 0:
		d.brush.Next()
		return
	case buttons&tcell.WheelDown != 0:
		d.brush.Prev()
		return
	}

	x, y := brush.CellAt(px, py, cellCols, 1)
	if _, ok := d.world.Cell(x, y); !ok {
		return
	}
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		d.brush.Paint(d.world, x, y)
	case buttons&tcell.ButtonSecondary != 0:
		d.brush.Erase(d.world, x, y)
	}
}

func (d *Driver) reset(seed int64) {
	d.seed = seed
	d.world.Reset(seed)
	d.step.Reset()
}

// Draw renders the world and status line and shows the frame.
func (d *Driver) Draw() {
	d.screen.Clear()
	size := d.world.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			m, _ := d.world.Cell(x, y)
			style := d.styleFor(m)
			for c := 0; c < cellCols; c++ {
				d.screen.SetContent(x*cellCols+c, y, ' ', nil, style)
			}
		}
	}
	d.drawText(0, size.H, d.status())
	d.screen.Show()
}

func (d *Driver) status() string {
	state := "running"
	if d.paused {
		state = "paused"
	}
	return fmt.Sprintf("brush:%s r=%d tick:%d %s  [tab] material [space] pause [n] step [r] reset [q] quit",
		d.brush.Material(), d.brush.Radius(), d.world.Ticks(), state)
}

func (d *Driver) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// styleFor caches one background style per material value. Materials
// without a color draw with the default style.
func (d *Driver) styleFor(m sand.Material) tcell.Style {
	if style, ok := d.styles[m]; ok {
		return style
	}
	style := tcell.StyleDefault
	if c, err := sand.Color(m); err == nil {
		style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	d.styles[m] = style
	return style
}
