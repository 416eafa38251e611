//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"lifeboard/internal/app"
	"lifeboard/internal/engine"
)

func main() {
	cfg, err := app.Parse("life", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := cfg.OpenLogger(os.Stderr)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	eng, err := engine.New(cfg.Engine(), engine.WithLogger(logger))
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Close()

	game := app.New(eng, cfg.CellSize, logger)
	defer game.Close()
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
