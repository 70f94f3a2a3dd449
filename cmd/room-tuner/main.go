package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"cozy-spring/internal/config"
	"cozy-spring/internal/logger"
	"cozy-spring/internal/room"
	pcore "cozy-spring/pkg/core"
)

type sweep struct {
	key            string
	from, to, step float64
}

// parseSweep reads key=from:to:step.
func parseSweep(s string) (sweep, error) {
	key, spec, ok := strings.Cut(s, "=")
	parts := strings.Split(spec, ":")
	if !ok || len(parts) != 3 {
		return sweep{}, fmt.Errorf("sweep %q is not key=from:to:step", s)
	}
	if _, known := room.DefaultParams().Float(key); !known {
		return sweep{}, fmt.Errorf("unknown room parameter %q", key)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return sweep{}, fmt.Errorf("sweep %q: %w", s, err)
		}
		vals[i] = v
	}
	sw := sweep{key: key, from: vals[0], to: vals[1], step: vals[2]}
	if sw.step <= 0 || sw.to < sw.from {
		return sweep{}, fmt.Errorf("sweep %q: need step > 0 and to >= from", s)
	}
	return sw, nil
}

// values lists the sweep points. The end point is included when the steps
// land on it.
func (s sweep) values() []float64 {
	n := int(math.Floor((s.to-s.from)/s.step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = s.from + float64(i)*s.step
	}
	return out
}

type candidate struct {
	label  string
	params room.Params
	stats  room.Stats
}

// candidates expands the sweep over base. Without a sweep the base params are
// the only candidate.
func candidates(base room.Params, sw *sweep) ([]candidate, error) {
	if sw == nil {
		return []candidate{{label: "base", params: base}}, nil
	}
	var out []candidate
	for _, v := range sw.values() {
		p := base
		value := strconv.FormatFloat(v, 'f', -1, 64)
		if sw.key == "growth_noise_octaves" || sw.key == "exit_size" {
			value = strconv.Itoa(int(math.Round(v)))
		}
		if err := p.Set(sw.key, value); err != nil {
			return nil, err
		}
		out = append(out, candidate{label: sw.key + "=" + value, params: p})
	}
	return out, nil
}

// evaluate fills in the stats of every candidate using up to workers
// goroutines.
func evaluate(ctx context.Context, cands []candidate, w, h int, seeds []uint32, layout room.Layout, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range cands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cands[i].stats = room.Evaluate(cands[i].params, w, h, seeds, layout)
			logger.Debug("candidate evaluated", "candidate", cands[i].label, "stats", cands[i].stats.String())
			return nil
		})
	}
	return g.Wait()
}

func main() {
	fs := flag.CommandLine
	rooms := fs.Int("rooms", 64, "rooms generated per candidate")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	exits := fs.String("exits", "nsew", "open sides of every evaluated room")
	sweepFlag := fs.String("sweep", "", "sweep one parameter as key=from:to:step")
	target := fs.Float64("target-walls", 0.35, "wall fraction the best candidate should approach")
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}

	layout, err := room.ParseLayout(*exits)
	if err != nil {
		log.Fatal(err)
	}
	var sw *sweep
	if *sweepFlag != "" {
		parsed, err := parseSweep(*sweepFlag)
		if err != nil {
			log.Fatal(err)
		}
		sw = &parsed
	}
	cands, err := candidates(cfg.Room.Params, sw)
	if err != nil {
		log.Fatal(err)
	}

	rng := pcore.NewRNG(cfg.Viewer.Seed)
	seeds := make([]uint32, *rooms)
	for i := range seeds {
		seeds[i] = rng.Uint32()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Evaluating %d candidates over %d %dx%d rooms (%d workers, exits %s)\n",
		len(cands), len(seeds), cfg.Room.Width, cfg.Room.Height, *workers, layout)
	if err := evaluate(ctx, cands, cfg.Room.Width, cfg.Room.Height, seeds, layout, *workers); err != nil {
		logger.Warning("evaluation interrupted", "error", err)
		os.Exit(1)
	}

	best := 0
	for i, c := range cands {
		fmt.Printf("  %-32s %s\n", c.label, c.stats)
		if math.Abs(c.stats.WallFraction()-*target) < math.Abs(cands[best].stats.WallFraction()-*target) {
			best = i
		}
	}
	fmt.Printf("\nClosest to wall fraction %.2f: %s\n", *target, cands[best].label)
	if cands[best].stats.BlockedExits > 0 {
		fmt.Printf("warning: %d of %d exits unreachable\n", cands[best].stats.BlockedExits, cands[best].stats.Exits)
	}
}
