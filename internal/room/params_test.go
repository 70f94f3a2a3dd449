package room

import (
	"testing"

	pcore "cozy-spring/pkg/core"
)

func TestFromMapOverrides(t *testing.T) {
	p := FromMap(map[string]string{
		"growth_falloff":       "0.8",
		"growth_noise_octaves": "5",
		"exit_size":            "4",
		"unknown":              "1",
		"edge_growth":          "not-a-number",
	})
	if p.GrowthFalloff != 0.8 || p.GrowthNoiseOctaves != 5 || p.ExitSize != 4 {
		t.Fatalf("overrides not applied: %+v", p)
	}
	if p.EdgeGrowth != DefaultParams().EdgeGrowth {
		t.Fatalf("malformed value should be ignored, got %f", p.EdgeGrowth)
	}
	if FromMap(nil) != DefaultParams() {
		t.Fatalf("nil map should yield defaults")
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	p := DefaultParams()
	if err := p.Set("bogus", "1"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if err := p.Set("growth_noise_octaves", "0"); err == nil {
		t.Fatalf("expected error for octaves below minimum")
	}
	if err := p.Set("tree_growth_cutoff", "0.25"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := p.Float("tree_growth_cutoff"); !ok || v != 0.25 {
		t.Fatalf("Float = %f, %v", v, ok)
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := DefaultParams().Parameters()
	if snap.Len() != len(Keys()) {
		t.Fatalf("snapshot has %d params, want %d", snap.Len(), len(Keys()))
	}
	param, ok := snap.Lookup("exit_size")
	if !ok || param.Value != "2" {
		t.Fatalf("exit_size lookup = %+v, %v", param, ok)
	}
	param, ok = snap.Lookup("growth_noise_bias")
	if !ok || param.Value != "-1.7" {
		t.Fatalf("growth_noise_bias lookup = %+v, %v", param, ok)
	}
}

func TestLayoutHelpers(t *testing.T) {
	l := Layout{}.Open(North).Open(West)
	if !l.Has(North) || !l.Has(West) || l.Has(South) {
		t.Fatalf("unexpected layout %+v", l)
	}
	if got := l.String(); got != "nw" {
		t.Fatalf("String = %q", got)
	}
	parsed, err := ParseLayout("NW")
	if err != nil || parsed != l {
		t.Fatalf("ParseLayout = %+v, %v", parsed, err)
	}
	if _, err := ParseLayout("nx"); err == nil {
		t.Fatalf("expected error for invalid side")
	}
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%s opposite is not an involution", d)
		}
		if off := d.Offset().Add(d.Opposite().Offset()); off.X != 0 || off.Y != 0 {
			t.Fatalf("%s offsets do not cancel", d)
		}
	}
}

func TestRandomLayoutDeterministic(t *testing.T) {
	a := pcore.NewRNG(3)
	b := pcore.NewRNG(3)
	seen := map[Layout]bool{}
	for i := 0; i < 64; i++ {
		la, lb := RandomLayout(a), RandomLayout(b)
		if la != lb {
			t.Fatalf("draw %d diverged", i)
		}
		seen[la] = true
	}
	if len(seen) < 4 {
		t.Fatalf("random layouts lack variety: %d distinct", len(seen))
	}
}
