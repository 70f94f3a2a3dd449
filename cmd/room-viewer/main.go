//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"cozy-spring/internal/app"
	"cozy-spring/internal/config"
	"cozy-spring/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cozy-spring")
	ebiten.SetTPS(cfg.Viewer.TPS)
	ebiten.SetWindowSize(w*cfg.Viewer.Scale, h*cfg.Viewer.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
