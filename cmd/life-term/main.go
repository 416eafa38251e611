package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeboard/internal/app"
	"lifeboard/internal/engine"
	"lifeboard/internal/term"
)

func main() {
	cfg, err := app.Parse("life-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns the screen for the lifetime of the program. The terminal is in
// use, so log output goes to -log or nowhere.
func run(cfg *app.Config) error {
	logger, closeLog, err := cfg.OpenLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := engine.New(cfg.Engine(), engine.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "[run] engine")
	}
	defer eng.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] new screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[run] init screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	surface := term.New(screen, eng, logger)
	defer surface.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return surface.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		eng.Stop()
		return nil
	})

	err = g.Wait()
	stats := eng.Stats()
	logger.Printf("exit at generation %d, population %d, average %.1f, %.1f generations/s",
		stats.Generation, stats.Population, stats.AveragePopulation, stats.GenerationsPerSecond)
	if errors.Is(err, term.ErrQuit) {
		return nil
	}
	return err
}
