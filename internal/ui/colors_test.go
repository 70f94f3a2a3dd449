package ui

import (
	"image/color"
	"math"
	"testing"

	"cozy-spring/internal/core"
	"cozy-spring/internal/entity"
)

func TestHeartsText(t *testing.T) {
	got := HeartsText([]entity.HeartState{entity.HeartFull, entity.HeartHalf, entity.HeartEmpty})
	if got != "[#+-]" {
		t.Fatalf("HeartsText = %q", got)
	}
	if got := HeartsText(nil); got != "[]" {
		t.Fatalf("empty hearts = %q", got)
	}
}

func TestGrowthT(t *testing.T) {
	if got := growthT(float32(math.Inf(-1))); got != 0 {
		t.Fatalf("critical path should map to 0, got %v", got)
	}
	if got := growthT(0); got != 0.5 {
		t.Fatalf("zero growth should map to 0.5, got %v", got)
	}
	if got := growthT(10); got != 1 {
		t.Fatalf("growth should clamp to 1, got %v", got)
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	if got := heatColor(-1); got != (color.RGBA{R: 40, G: 60, B: 120, A: 150}) {
		t.Fatalf("low end = %v", got)
	}
	if got := heatColor(2); got != (color.RGBA{R: 240, G: 235, B: 215, A: 215}) {
		t.Fatalf("high end = %v", got)
	}
	mid := heatColor(0.125)
	if mid.R != 55 || mid.B != 140 {
		t.Fatalf("midpoint between first stops = %v", mid)
	}
}

func TestStepValue(t *testing.T) {
	cases := []struct {
		param     core.Parameter
		direction int
		want      string
		ok        bool
	}{
		{core.Parameter{Type: core.ParamTypeInt, Value: "3"}, 1, "4", true},
		{core.Parameter{Type: core.ParamTypeInt, Value: "3"}, -1, "2", true},
		{core.Parameter{Type: core.ParamTypeFloat, Value: "0.6"}, 1, "0.65", true},
		{core.Parameter{Type: core.ParamTypeFloat, Value: "-1"}, -1, "-1.05", true},
		{core.Parameter{Type: core.ParamTypeInt, Value: "x"}, 1, "", false},
		{core.Parameter{Type: core.ParamTypeBool, Value: "true"}, 1, "", false},
	}
	for _, tc := range cases {
		got, ok := stepValue(tc.param, tc.direction)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("stepValue(%+v, %d) = %q, %v; want %q, %v", tc.param, tc.direction, got, ok, tc.want, tc.ok)
		}
	}
}
