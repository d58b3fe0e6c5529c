package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/menu"
	"darkmaze/pkg/game/renderer"
	ebitenrenderer "darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
)

// tuiLogFile receives log output while the terminal renderer owns the screen
const tuiLogFile = "darkmaze.log"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		menu.PrintBindings(os.Stderr)
		return
	}
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	renderer.InitLocale(cfg.LocalesDir, cfg.Lang)

	s, err := gameplay.NewSession(cfg.Params(), cfg.TimeLimit, cfg.MasterSeed())
	if err != nil {
		log.Fatalf("Could not start game: %v", err)
	}

	if cfg.Dump {
		if err := devtools.DumpMap(os.Stdout, s.Game); err != nil {
			log.Fatalf("Map dump failed: %v", err)
		}
		return
	}

	switch cfg.Renderer {
	case config.RendererTUI:
		closeLog := redirectLog(tuiLogFile)
		defer closeLog()
		renderer.SetRenderer(tui.New(os.Stdout))
	default:
		renderer.SetRenderer(ebitenrenderer.New(cfg.CellSize))
	}

	renderer.Init()

	if err := renderer.Run(s); err != nil {
		log.Printf("Renderer error: %v", err)
		os.Exit(1)
	}
}

// redirectLog sends log output to path, or drops it if the file cannot be opened.
func redirectLog(path string) func() {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
