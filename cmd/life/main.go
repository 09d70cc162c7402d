//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life2d/internal/app"
	"life2d/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := life.NewWithConfig(cfg.Life())
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(sim, cfg.Density)
	w, h := game.Layout(0, 0)
	log.Printf("life %dx%d cells, interval %s, density %.0f%%", cfg.Width, cfg.Height, cfg.Interval, cfg.Density)

	ebiten.SetWindowTitle("life2d")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
