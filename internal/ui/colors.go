package ui

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"cozy-spring/internal/core"
	"cozy-spring/internal/entity"
)

// Status is the non-parameter text shown at the top of the HUD.
type Status struct {
	Title  string
	Lines  []string
	Hearts []entity.HeartState
}

// HeartsText renders hearts as ASCII: '#' full, '+' half, '-' empty.
func HeartsText(hearts []entity.HeartState) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, h := range hearts {
		switch h {
		case entity.HeartFull:
			b.WriteByte('#')
		case entity.HeartHalf:
			b.WriteByte('+')
		default:
			b.WriteByte('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// growthT maps a growth value onto [0,1] for the heatmap. Critical path
// cells (-Inf) map to zero.
func growthT(v float32) float64 {
	if math.IsInf(float64(v), -1) {
		return 0
	}
	return clamp01((float64(v) + 2) / 4)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// heatColor runs from open ground (blue) to dense growth (pale yellow).
func heatColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// stepValue moves an int parameter by one and a float parameter by 0.05.
func stepValue(p core.Parameter, direction int) (string, bool) {
	switch p.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			return "", false
		}
		return strconv.Itoa(v + direction), true
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(v+0.05*float64(direction), 'f', 2, 64), true
	}
	return "", false
}
