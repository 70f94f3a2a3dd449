package room

import (
	"math"

	"cozy-spring/internal/core"
	"cozy-spring/internal/noise"
)

// GrowthField is the memoised scalar field that drives both floor and wall
// classification. Values are in [-1, 1], or -Inf on a critical path.
type GrowthField struct {
	params Params
	layout Layout
	// span is the room extent in cell-centre coordinates: (w-1, h-1).
	span  core.Vec2
	noise *noise.Generator
	memo  map[core.Point]float32
}

// NewGrowthField prepares the growth field for a w×h room.
func NewGrowthField(w, h int, seed uint32, p Params, l Layout) *GrowthField {
	return &GrowthField{
		params: p,
		layout: l,
		span:   core.Vec2{X: float64(w - 1), Y: float64(h - 1)},
		noise: noise.New(noise.Config{
			Type:       noise.TypePerlin,
			Seed:       int64(seed),
			Frequency:  p.GrowthNoiseFrequency,
			Fractal:    noise.FractalRidged,
			Octaves:    p.GrowthNoiseOctaves,
			Gain:       p.NoiseFractalGain,
			Lacunarity: 2,
		}),
		memo: make(map[core.Point]float32),
	}
}

// At returns the growth factor of cell (x, y), computing it at most once.
func (g *GrowthField) At(x, y int) float32 {
	p := core.Pt(x, y)
	if v, ok := g.memo[p]; ok {
		return v
	}
	v := g.compute(core.Vec2{X: float64(x), Y: float64(y)})
	g.memo[p] = v
	return v
}

// Cached reports whether (x, y) has already been evaluated.
func (g *GrowthField) Cached(x, y int) bool {
	_, ok := g.memo[core.Pt(x, y)]
	return ok
}

// CachedCount returns the number of memoised cells.
func (g *GrowthField) CachedCount() int { return len(g.memo) }

func (g *GrowthField) compute(pos core.Vec2) float32 {
	if g.onCriticalPath(pos) {
		return float32(math.Inf(-1))
	}
	v := g.edgeTerm(pos) + g.noiseTerm(pos)
	return float32(min(max(v, -1), 1))
}

func (g *GrowthField) edgeTerm(pos core.Vec2) float64 {
	hw := g.span.X / 2
	hh := g.span.Y / 2
	dx := max(hw-math.Abs(pos.X-hw), 0)
	dy := max(hh-math.Abs(pos.Y-hh), 0)
	edge := min(dx, dy)
	return max(g.params.EdgeGrowth*(1-edge*g.params.GrowthFalloff), g.params.CenterGrowth)
}

func (g *GrowthField) noiseTerm(pos core.Vec2) float64 {
	return g.params.GrowthNoiseAmplitude*g.noise.Noise2D(pos.X, pos.Y) + g.params.GrowthNoiseBias
}

// pathTo returns the segment from the room centre to the midpoint of side d.
func (g *GrowthField) pathTo(d Direction) core.Vec2 {
	switch d {
	case North:
		return core.Vec2{Y: -g.span.Y / 2}
	case South:
		return core.Vec2{Y: g.span.Y / 2}
	case East:
		return core.Vec2{X: g.span.X / 2}
	default:
		return core.Vec2{X: -g.span.X / 2}
	}
}

func (g *GrowthField) onCriticalPath(pos core.Vec2) bool {
	rel := pos.Sub(g.span.Scale(0.5))
	for _, d := range Directions {
		if g.layout.Has(d) && inWedge(rel, g.pathTo(d), g.params.ExitSize) {
			return true
		}
	}
	return false
}

// inWedge reports whether rel lies in the corridor along path whose half
// width grows from the centre line to exitSize/2 at the far end. The half
// width never drops below half a cell.
func inWedge(rel, path core.Vec2, exitSize int) bool {
	length := path.Len()
	dir := path.Normalized()
	along := rel.X*dir.X + rel.Y*dir.Y
	if along < -0.5 || along > length {
		return false
	}
	proportion := 1.0
	if length > 0 {
		proportion = along / length
	}
	perp := rel.Sub(dir.Scale(along)).Len()
	return perp <= max(proportion*float64(exitSize)/2, 0.5)
}

// SpecialField is the sparse-decoration noise field. It is cheap and not
// cached.
type SpecialField struct {
	amplitude float64
	noise     *noise.Generator
}

// NewSpecialField prepares the special field for seed.
func NewSpecialField(seed uint32, p Params) *SpecialField {
	return &SpecialField{
		amplitude: p.SpecialNoiseAmplitude,
		noise: noise.New(noise.Config{
			Type:      noise.TypeValue,
			Seed:      int64(seed),
			Frequency: p.SpecialNoiseFrequency,
		}),
	}
}

// At returns the special factor of cell (x, y).
func (s *SpecialField) At(x, y int) float32 {
	return float32(s.amplitude * s.noise.Noise2D(float64(x), float64(y)))
}
