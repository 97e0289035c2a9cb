package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"falling-sand/internal/app"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, err := cfg.NewBrush()
	if err != nil {
		log.Fatal(err)
	}

	world := sand.NewWithConfig(sand.FromMap(cfg.SimOptions()))
	world.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, world, b, cfg.TPS, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
