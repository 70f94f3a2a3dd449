// Package termview previews generated rooms in a terminal.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"cozy-spring/internal/core"
	"cozy-spring/internal/render"
)

// Action is what a key press asks the viewer to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionRegenerate
	ActionReseed
	ActionLegend
)

// keyAction maps a key to an Action. Quit follows the usual q/Esc/Ctrl-C.
func keyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionRegenerate
		case 'n', 'N':
			return ActionReseed
		case 'l', 'L':
			return ActionLegend
		}
	}
	return ActionNone
}

type glyph struct {
	r     rune
	style tcell.Style
	name  string
}

var glyphs = []glyph{
	render.PaletteEmpty:     {' ', tcell.StyleDefault, "empty"},
	render.PaletteDirt:      {'.', tcell.StyleDefault.Foreground(tcell.ColorOlive), "dirt"},
	render.PaletteGrass:     {',', tcell.StyleDefault.Foreground(tcell.ColorGreen), "grass"},
	render.PaletteTallGrass: {'"', tcell.StyleDefault.Foreground(tcell.ColorLime), "tall grass"},
	render.PaletteWall:      {'#', tcell.StyleDefault.Foreground(tcell.ColorDarkGreen), "wall"},
	render.PaletteTree:      {'T', tcell.StyleDefault.Foreground(tcell.ColorForestGreen).Bold(true), "lone tree"},
}

// Glyph returns the rune and style for a palette index. Unknown indices
// render as '?'.
func Glyph(index uint8) (rune, tcell.Style) {
	if int(index) >= len(glyphs) {
		return '?', tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	g := glyphs[index]
	return g.r, g.style
}

// Frame is one generated room ready for display.
type Frame struct {
	Cells  *core.Grid[uint8]
	Status string
}

// Generator produces the frame for seed.
type Generator func(seed uint32) Frame

// Draw writes frame at the top-left of screen with the status line below.
func Draw(screen tcell.Screen, frame Frame, legend bool) {
	screen.Clear()
	for p, v := range frame.Cells.All() {
		r, style := Glyph(v)
		screen.SetContent(p.X, p.Y, r, nil, style)
	}
	y := frame.Cells.Height() + 1
	puts(screen, 0, y, frame.Status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	y++
	puts(screen, 0, y, "r regenerate  n next seed  l legend  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	if legend {
		for i, g := range glyphs[1:] {
			puts(screen, 0, y+1+i, fmt.Sprintf("%c %s", g.r, g.name), g.style)
		}
	}
	screen.Show()
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Viewer runs the interactive preview loop.
type Viewer struct {
	screen   tcell.Screen
	generate Generator
	seed     uint32
	legend   bool
	frame    Frame
}

// New wraps an initialised screen.
func New(screen tcell.Screen, generate Generator, seed uint32) *Viewer {
	return &Viewer{screen: screen, generate: generate, seed: seed}
}

// Seed returns the seed of the displayed room.
func (v *Viewer) Seed() uint32 { return v.seed }

// Apply performs a and reports whether the viewer should keep running.
func (v *Viewer) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionRegenerate:
		v.frame = v.generate(v.seed)
	case ActionReseed:
		v.seed++
		v.frame = v.generate(v.seed)
	case ActionLegend:
		v.legend = !v.legend
	}
	return true
}

// Run draws the first frame and blocks until the user quits.
func (v *Viewer) Run() {
	v.frame = v.generate(v.seed)
	Draw(v.screen, v.frame, v.legend)
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.Apply(keyAction(ev.Key(), ev.Rune())) {
				return
			}
		}
		Draw(v.screen, v.frame, v.legend)
	}
}

// Open initialises the terminal screen, runs the viewer and restores the
// terminal.
func Open(generate Generator, seed uint32) (uint32, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return seed, fmt.Errorf("termview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return seed, fmt.Errorf("termview: %w", err)
	}
	defer screen.Fini()

	v := New(screen, generate, seed)
	v.Run()
	return v.Seed(), nil
}
