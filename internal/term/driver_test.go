package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"falling-sand/internal/brush"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newTestDriver(t *testing.T) (*Driver, tcell.SimulationScreen, *sand.World) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	world := sand.NewWithConfig(sand.Config{Width: 10, Height: 5, Seed: 1, Scene: sand.SceneEmpty})
	world.Reset(0)
	return New(screen, world, nil, 4, 1), screen, world
}

func TestMousePaintsAndErases(t *testing.T) {
	d, _, world := newTestDriver(t)

	d.handleMouse(5, 1, tcell.ButtonPrimary)
	if m, _ := world.Cell(2, 1); m != sand.Sand {
		t.Fatalf("expected sand at (2,1), got %s", m)
	}

	d.handleMouse(4, 1, tcell.ButtonSecondary)
	if m, _ := world.Cell(2, 1); m != sand.Empty {
		t.Fatalf("expected erase at (2,1), got %s", m)
	}

	// The status line below the grid is not paintable.
	d.handleMouse(0, 5, tcell.ButtonPrimary)
	for _, v := range world.Cells() {
		if v != uint8(sand.Empty) {
			t.Fatal("click outside the grid painted a cell")
		}
	}
}

func TestWheelCyclesBrush(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.handleMouse(0, 0, tcell.WheelUp)
	if d.brush.Material() != sand.Water {
		t.Fatalf("wheel up from sand = %s, want water", d.brush.Material())
	}
	d.handleMouse(0, 0, tcell.WheelDown)
	d.handleMouse(0, 0, tcell.WheelDown)
	if d.brush.Material() != sand.Stone {
		t.Fatalf("wheel down twice = %s, want stone", d.brush.Material())
	}
}

func TestKeys(t *testing.T) {
	d, _, world := newTestDriver(t)

	if d.handleKey(tcell.KeyRune, ' ') || !d.paused {
		t.Fatal("space should pause without quitting")
	}
	if d.handleKey(tcell.KeyEnter, 0) || d.paused {
		t.Fatal("enter should resume")
	}

	world.SetCell(3, 0, sand.Sand)
	d.handleKey(tcell.KeyRune, 'n')
	if world.Ticks() != 1 {
		t.Fatalf("ticks = %d after single step", world.Ticks())
	}
	if m, _ := world.Cell(3, 1); m != sand.Sand {
		t.Fatalf("sand did not fall on single step, got %s", m)
	}

	d.handleKey(tcell.KeyRune, '4')
	if d.brush.Material() != sand.Lava {
		t.Fatalf("key 4 selected %s", d.brush.Material())
	}
	d.handleKey(tcell.KeyTab, 0)
	if d.brush.Material() != sand.Stone {
		t.Fatalf("tab from lava = %s, want stone", d.brush.Material())
	}
	d.handleKey(tcell.KeyRune, ']')
	if d.brush.Radius() != 1 {
		t.Fatalf("radius = %d", d.brush.Radius())
	}

	d.handleKey(tcell.KeyRune, 'r')
	if world.Ticks() != 0 {
		t.Fatal("reset should clear the tick counter")
	}

	for _, quit := range []struct {
		key tcell.Key
		r   rune
	}{{tcell.KeyRune, 'q'}, {tcell.KeyEscape, 0}, {tcell.KeyCtrlC, 0}} {
		if !d.handleKey(quit.key, quit.r) {
			t.Fatalf("key %v/%q should quit", quit.key, quit.r)
		}
	}
}

func TestDrawColorsCells(t *testing.T) {
	d, screen, world := newTestDriver(t)
	world.SetCell(1, 2, sand.Water)
	d.Draw()

	cells, width, _ := screen.GetContents()
	waterStyle := d.styleFor(sand.Water)
	for c := 0; c < cellCols; c++ {
		cell := cells[2*width+1*cellCols+c]
		if cell.Style != waterStyle {
			t.Fatalf("column %d of water cell not styled", c)
		}
	}
	if cells[0].Style != tcell.StyleDefault {
		t.Fatal("empty cell should use the default style")
	}

	status := cells[5*width]
	if len(status.Runes) == 0 || status.Runes[0] != 'b' {
		t.Fatalf("status line missing, got %q", status.Runes)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	d, _, _ := newTestDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestEventPumpExitsAfterCancel(t *testing.T) {
	d, screen, _ := newTestDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := d.pollEvents(ctx)
	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("post event: %v", err)
	}
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event pump still running after cancel")
		}
	}
}

func TestDriverUsesGivenBrush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	b, err := brush.NewWith(sand.Lava)
	if err != nil {
		t.Fatal(err)
	}
	world := sand.NewWithConfig(sand.Config{Width: 4, Height: 4, Seed: 1, Scene: sand.SceneEmpty})
	world.Reset(0)
	d := New(screen, world, b, 4, 1)

	d.handleMouse(2, 0, tcell.ButtonPrimary)
	if m, _ := world.Cell(1, 0); m != sand.Lava {
		t.Fatalf("painted %s, want lava", m)
	}
}
