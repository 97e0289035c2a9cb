package core

import (
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	if v, ok := g.At(2, 1); !ok || v != 7 {
		t.Fatalf("At(2,1) = %d,%v, want 7,true", v, ok)
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}, {-5, -5}}
	for _, c := range outside {
		if _, ok := g.At(c[0], c[1]); ok {
			t.Fatalf("At(%d,%d) reported in bounds", c[0], c[1])
		}
		g.Set(c[0], c[1], 9)
	}

	buf := make([]uint8, 6)
	g.CopyTo(buf)
	for i, v := range buf {
		want := uint8(0)
		if i == g.Index(2, 1) {
			want = 7
		}
		if v != want {
			t.Fatalf("cell %d = %d, want %d after out-of-bounds writes", i, v, want)
		}
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
}

func TestByteGridSwap(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Set(0, 0, 1)
	g.Set(1, 1, 2)
	g.Swap(0, 0, 1, 1)
	if v, _ := g.At(0, 0); v != 2 {
		t.Fatalf("expected 2 at origin, got %d", v)
	}
	if v, _ := g.At(1, 1); v != 1 {
		t.Fatalf("expected 1 at (1,1), got %d", v)
	}

	g.Swap(0, 0, 2, 0)
	if v, _ := g.At(0, 0); v != 2 {
		t.Fatalf("swap with out-of-bounds cell must be ignored, got %d", v)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(10), b.IntN(10); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}

	a.Seed(7)
	b.Seed(7)
	if Pick(a, []string{"x", "y", "z"}) != Pick(b, []string{"x", "y", "z"}) {
		t.Fatal("Pick not deterministic after reseed")
	}
}

func TestFixedStepInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before interval elapsed")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step once interval elapsed")
	}

	clock = clock.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected catch-up to be capped at 2 steps, got %d", steps)
	}
}

func TestFixedStepTPS(t *testing.T) {
	fs := NewFixedStep(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
	fs.SetTPS(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive tps should default to 60, got %v", fs.Interval())
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	for _, name := range SimNames() {
		if name == "" || name == "nil-factory" {
			t.Fatalf("invalid registration %q accepted", name)
		}
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Value: "30"}}},
		{Name: "Scene", Params: []Parameter{{Key: "scene", Value: "basin"}}},
	}}
	if p, ok := snap.Lookup("scene"); !ok || p.Value != "basin" {
		t.Fatalf("Lookup(scene) = %+v,%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup reported a missing key")
	}
}
