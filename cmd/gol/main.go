package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"tgol/internal/app"
	"tgol/internal/gui"
	"tgol/internal/term"
	"tgol/pkg/core"
	"tgol/pkg/sims/life"
)

func main() {
	log.SetPrefix("[GOL] ")

	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyArgs(flag.Args(), os.Stderr)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// The process RNG is seeded exactly once here and shared by every world.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.UI {
	case app.UIWindow:
		err = runWindow(cfg, rng, seed)
	default:
		err = runTerminal(ctx, cfg, rng, seed)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func runTerminal(ctx context.Context, cfg *app.Config, rng *core.RNG, seed int64) error {
	restore, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	minRows, minCols := cfg.MinRows, cfg.MinCols
	w, h := screen.Size()
	rows, cols := max(minRows, h-2), max(minCols, w)

	world, err := newWorld(cfg, rng, rows, cols, seed)
	if err != nil {
		return err
	}
	defer world.Release()

	ctrl := app.NewController(world, minRows, minCols)
	return term.New(screen, ctrl, cfg.Speed()).Run(ctx)
}

func runWindow(cfg *app.Config, rng *core.RNG, seed int64) error {
	// The window keeps the size of the first board; 80x48 fits most displays
	// at the default scale.
	world, err := newWorld(cfg, rng, max(cfg.MinRows, 48), max(cfg.MinCols, 80), seed)
	if err != nil {
		return err
	}
	defer world.Release()
	return gui.Run(app.NewController(world, cfg.MinRows, cfg.MinCols), cfg.Scale, cfg.Speed())
}

func newWorld(cfg *app.Config, rng *core.RNG, rows, cols int, seed int64) (*life.World, error) {
	wc, err := cfg.WorldConfig(rows, cols)
	if err != nil {
		return nil, err
	}
	world, err := life.New(wc, rng)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	log.Printf("world %dx%d density=%d rule=%s adaptive=%v seed=%d population=%d",
		rows, cols, wc.Density, world.Rule(), wc.Adaptive, seed, world.Population())
	return world, nil
}

// redirectLog sends log output to path, or discards it when path is empty,
// while the terminal owns stdout and stderr. The returned func restores
// stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
