package sand

import (
	"sort"

	"falling-sand/internal/core"
)

// Scene names accepted by Config.Scene.
const (
	SceneEmpty     = "empty"
	SceneBasin     = "basin"
	SceneHourglass = "hourglass"
	SceneRain      = "rain"
)

type sceneFunc func(g *Grid, rng *core.RNG)

var scenes = map[string]sceneFunc{
	SceneEmpty:     func(*Grid, *core.RNG) {},
	SceneBasin:     buildBasin,
	SceneHourglass: buildHourglass,
	SceneRain:      buildRain,
}

// SceneNames lists the available starting scenes.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fillRect(g *Grid, x0, y0, x1, y1 int, m Material) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.SetCell(x, y, m)
		}
	}
}

// buildBasin walls in the lower half of the grid and drops a sand pile, a
// water body and a little lava above it.
func buildBasin(g *Grid, _ *core.RNG) {
	w, h := g.Width(), g.Height()
	fillRect(g, 0, h-1, w-1, h-1, Stone)
	fillRect(g, 0, h/2, 0, h-1, Stone)
	fillRect(g, w-1, h/2, w-1, h-1, Stone)

	third := w / 3
	fillRect(g, 1, 1, third, h/4, Sand)
	fillRect(g, w-1-third, 1, w-2, h/4, Water)
	fillRect(g, third+1, 1, w-2-third, 2, Lava)
}

// buildHourglass draws two stone ramps that funnel sand through a one-cell
// gap in the middle of the grid.
func buildHourglass(g *Grid, _ *core.RNG) {
	w, h := g.Width(), g.Height()
	mid := h / 2
	cx := w / 2
	for x := 0; x < w; x++ {
		d := x - cx
		if d < 0 {
			d = -d
		}
		if d == 0 {
			continue
		}
		y := mid - d
		if y < 0 {
			continue
		}
		g.SetCell(x, y, Stone)
	}
	for y := 0; y < mid; y++ {
		for x := 0; x < w; x++ {
			if m, _ := g.Cell(x, y); m != Empty {
				continue
			}
			d := x - cx
			if d < 0 {
				d = -d
			}
			if y < mid-d && y < mid/2 {
				g.SetCell(x, y, Sand)
			}
		}
	}
	fillRect(g, 0, h-1, w-1, h-1, Stone)
}

// buildRain scatters sand and water over the top third and a few stone
// ledges below it.
func buildRain(g *Grid, rng *core.RNG) {
	w, h := g.Width(), g.Height()
	drops := []Material{Sand, Water, Water, Lava}
	for y := 0; y < h/3; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < 0.25 {
				g.SetCell(x, y, core.Pick(rng, drops))
			}
		}
	}
	ledges := w / 8
	for i := 0; i < ledges; i++ {
		lx := rng.IntN(w)
		ly := h/3 + rng.IntN(h-h/3)
		fillRect(g, lx, ly, lx+w/6, ly, Stone)
	}
}
