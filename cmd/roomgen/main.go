package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"cozy-spring/internal/config"
	"cozy-spring/internal/logger"
	"cozy-spring/internal/render"
	"cozy-spring/internal/room"
	"cozy-spring/internal/termview"
	pcore "cozy-spring/pkg/core"
)

func main() {
	fs := flag.CommandLine
	exits := fs.String("exits", "nsew", "open sides as any of n, s, e, w, or \"random\"")
	dump := fs.String("dump", "", "write the resolved configuration as YAML to this file")
	tui := fs.Bool("tui", false, "open the interactive terminal preview")
	pngPath := fs.String("png", "", "write the room as a PNG to this file")
	pngScale := fs.Int("png-scale", 16, "pixels per tile for -png")
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}

	layout, err := parseExits(*exits, cfg.Viewer.Seed)
	if err != nil {
		log.Fatal(err)
	}

	if *dump != "" {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*dump, data, 0o644); err != nil {
			log.Fatal(err)
		}
		logger.Info("configuration written", "path", *dump)
	}

	gen := generator(cfg, layout)
	seed := uint32(cfg.Viewer.Seed)
	if *tui {
		last, err := termview.Open(gen, seed)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("last seed %d\n", last)
		return
	}

	frame := gen(seed)
	writeASCII(os.Stdout, frame)
	if *pngPath != "" {
		if err := writePNG(*pngPath, frame, *pngScale); err != nil {
			log.Fatal(err)
		}
	}
}

func parseExits(s string, seed int64) (room.Layout, error) {
	if strings.EqualFold(s, "random") {
		return room.RandomLayout(pcore.NewRNG(seed)), nil
	}
	return room.ParseLayout(s)
}

// generator builds rooms of the configured size and paints them into
// palette canvases.
func generator(cfg *config.Config, layout room.Layout) termview.Generator {
	w, h := cfg.Room.Width, cfg.Room.Height
	return func(seed uint32) termview.Frame {
		floor := render.NewFloorCanvas(w, h)
		walls := render.NewWallsCanvas(w, h)
		r := room.New(w, h, cfg.Room.Params,
			room.WithFloorLayer(room.NewFloorLayer(floor)),
			room.WithWallsLayer(room.NewWallsLayer(walls)),
		)
		r.Generate(seed, layout)
		return termview.Frame{
			Cells:  render.Composite(floor, walls),
			Status: fmt.Sprintf("seed %d %dx%d exits %s %s", seed, w, h, layout, r.Collect()),
		}
	}
}

func writeASCII(w io.Writer, frame termview.Frame) {
	cells := frame.Cells
	var b strings.Builder
	for p, v := range cells.All() {
		r, _ := termview.Glyph(v)
		b.WriteRune(r)
		if p.X == cells.Width()-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(frame.Status)
	b.WriteByte('\n')
	io.WriteString(w, b.String())
}

func writePNG(path string, frame termview.Frame, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, render.Image(frame.Cells, render.DefaultPalette, scale)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
