package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML or TOML config file.")
	seed := flag.Uint64("seed", 0, "Random seed for the particle field (0 picks one).")
	delegate := flag.Bool("delegate", false, "Track interactive regions by delegation instead of a startup snapshot.")
	flag.Parse()

	logger := log.New(os.Stderr, "[backdrop] ", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("config: %v", err)
		}
		cfg = loaded
		logger.Printf("loaded config from %s", *configPath)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *delegate {
		cfg.Cursor.Delegate = true
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatalf("game: %v", err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("run: %v", err)
	}
}
