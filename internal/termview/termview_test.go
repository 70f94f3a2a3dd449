package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"cozy-spring/internal/core"
	"cozy-spring/internal/render"
)

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'r', ActionRegenerate},
		{tcell.KeyRune, 'N', ActionReseed},
		{tcell.KeyRune, 'l', ActionLegend},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyEnter, 0, ActionNone},
	}
	for _, tc := range cases {
		if got := keyAction(tc.key, tc.r); got != tc.want {
			t.Fatalf("keyAction(%v, %q) = %d, want %d", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestGlyphs(t *testing.T) {
	want := map[uint8]rune{
		render.PaletteEmpty: ' ',
		render.PaletteWall:  '#',
		render.PaletteTree:  'T',
		render.PaletteGrass: ',',
	}
	for index, r := range want {
		if got, _ := Glyph(index); got != r {
			t.Fatalf("Glyph(%d) = %q, want %q", index, got, r)
		}
	}
	if got, _ := Glyph(200); got != '?' {
		t.Fatalf("unknown index should render '?', got %q", got)
	}
}

func TestViewerApply(t *testing.T) {
	var seeds []uint32
	gen := func(seed uint32) Frame {
		seeds = append(seeds, seed)
		return Frame{Cells: core.NewGrid[uint8](1, 1)}
	}
	v := New(nil, gen, 10)

	if !v.Apply(ActionRegenerate) || !v.Apply(ActionReseed) || !v.Apply(ActionLegend) {
		t.Fatalf("non-quit actions should keep the viewer running")
	}
	if v.Seed() != 11 {
		t.Fatalf("reseed should advance the seed, got %d", v.Seed())
	}
	if len(seeds) != 2 || seeds[0] != 10 || seeds[1] != 11 {
		t.Fatalf("unexpected generated seeds %v", seeds)
	}
	if !v.legend {
		t.Fatalf("legend should toggle on")
	}
	if v.Apply(ActionQuit) {
		t.Fatalf("quit should stop the viewer")
	}
}
