//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	_ "falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}
	size := sim.Size()

	ebiten.SetWindowTitle("Falling Sand - " + sim.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Panel, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
