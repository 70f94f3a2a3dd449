package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(1, 100); v < 1 || v > 100 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := r.FloatRange(0.1, 1.0); v < 0.1 || v >= 1.0 {
			t.Fatalf("FloatRange out of bounds: %f", v)
		}
	}
	if v := r.IntRange(5, 5); v != 5 {
		t.Fatalf("degenerate IntRange should return lo, got %d", v)
	}
	if v := r.FloatRange(2, 1); v != 2 {
		t.Fatalf("inverted FloatRange should return lo, got %f", v)
	}
}
