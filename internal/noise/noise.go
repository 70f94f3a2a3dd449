// Package noise provides seeded 2D gradient and value noise with optional
// fractal layering. Values are in [-1, 1] and bitwise reproducible for a
// given Config.
package noise

import "math"

// Type selects the base noise function.
type Type uint8

const (
	// TypePerlin is lattice gradient noise.
	TypePerlin Type = iota
	// TypeValue interpolates random values stored at lattice points.
	TypeValue
)

// Fractal selects how octaves are combined.
type Fractal uint8

const (
	FractalNone Fractal = iota
	FractalFBm
	FractalRidged
)

// Config describes a noise generator.
type Config struct {
	Type       Type
	Seed       int64
	Frequency  float64
	Fractal    Fractal
	Octaves    int
	Gain       float64
	Lacunarity float64
}

// DefaultConfig mirrors the usual single-octave defaults.
func DefaultConfig() Config {
	return Config{
		Type:       TypePerlin,
		Frequency:  0.01,
		Fractal:    FractalNone,
		Octaves:    3,
		Gain:       0.5,
		Lacunarity: 2.0,
	}
}

// grad2 are the gradient directions for Perlin noise.
var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

type table [512]int

// Generator evaluates noise for a fixed Config.
type Generator struct {
	cfg    Config
	tables []*table
	bound  float64
}

// New builds a generator, precomputing one permutation table per octave.
func New(cfg Config) *Generator {
	octaves := cfg.Octaves
	if cfg.Fractal == FractalNone || octaves < 1 {
		octaves = 1
	}
	g := &Generator{cfg: cfg, tables: make([]*table, octaves)}
	amp := 1.0
	for i := range octaves {
		g.tables[i] = permutation(cfg.Seed + int64(i))
		g.bound += amp
		amp *= cfg.Gain
	}
	if g.bound == 0 {
		g.bound = 1
	}
	return g
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Noise2D returns the noise value at (x, y) in [-1, 1].
func (g *Generator) Noise2D(x, y float64) float64 {
	x *= g.cfg.Frequency
	y *= g.cfg.Frequency

	switch g.cfg.Fractal {
	case FractalFBm, FractalRidged:
	default:
		return g.single(g.tables[0], x, y)
	}

	var sum float64
	amp := 1.0
	for _, t := range g.tables {
		n := g.single(t, x, y)
		if g.cfg.Fractal == FractalRidged {
			n = 1 - 2*math.Abs(n)
		}
		sum += n * amp
		amp *= g.cfg.Gain
		x *= g.cfg.Lacunarity
		y *= g.cfg.Lacunarity
	}
	return clamp(sum / g.bound)
}

func (g *Generator) single(t *table, x, y float64) float64 {
	if g.cfg.Type == TypeValue {
		return value2(t, x, y)
	}
	return perlin2(t, x, y)
}

func perlin2(t *table, x, y float64) float64 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	fx := x - float64(x0)
	fy := y - float64(y0)
	xi := x0 & 255
	yi := y0 & 255

	n00 := dotGrad(t[xi+t[yi]], fx, fy)
	n10 := dotGrad(t[xi+1+t[yi]], fx-1, fy)
	n01 := dotGrad(t[xi+t[yi+1]], fx, fy-1)
	n11 := dotGrad(t[xi+1+t[yi+1]], fx-1, fy-1)

	u := fade(fx)
	v := fade(fy)
	return clamp(lerp(lerp(n00, n10, u), lerp(n01, n11, u), v))
}

func value2(t *table, x, y float64) float64 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	xi := x0 & 255
	yi := y0 & 255

	u := fade(x - float64(x0))
	v := fade(y - float64(y0))
	a := lattice(t, xi, yi)
	b := lattice(t, xi+1, yi)
	c := lattice(t, xi, yi+1)
	d := lattice(t, xi+1, yi+1)
	return lerp(lerp(a, b, u), lerp(c, d, u), v)
}

// lattice maps a hashed lattice point to [-1, 1].
func lattice(t *table, xi, yi int) float64 {
	h := t[xi+t[yi]]
	return float64(h)/127.5 - 1
}

func dotGrad(hash int, x, y float64) float64 {
	g := grad2[hash&7]
	return g[0]*x + g[1]*y
}

func permutation(seed int64) *table {
	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates driven by a 64-bit LCG.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	t := new(table)
	for i := range t {
		t[i] = p[i&255]
	}
	return t
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func clamp(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
