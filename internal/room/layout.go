package room

import (
	"fmt"
	"strings"

	"cozy-spring/internal/core"
	pcore "cozy-spring/pkg/core"
)

// Direction names a side of a room. Rows grow downward, so North is row 0.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every side in a fixed order.
var Directions = [...]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Opposite returns the facing side.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the unit step toward d.
func (d Direction) Offset() core.Point {
	switch d {
	case North:
		return core.Pt(0, -1)
	case South:
		return core.Pt(0, 1)
	case East:
		return core.Pt(1, 0)
	default:
		return core.Pt(-1, 0)
	}
}

// Layout records which sides of a room carry an exit.
type Layout struct {
	North bool `yaml:"north"`
	South bool `yaml:"south"`
	East  bool `yaml:"east"`
	West  bool `yaml:"west"`
}

// Has reports whether side d is open.
func (l Layout) Has(d Direction) bool {
	switch d {
	case North:
		return l.North
	case South:
		return l.South
	case East:
		return l.East
	case West:
		return l.West
	}
	return false
}

// With returns a copy of l with side d set to open.
func (l Layout) With(d Direction, open bool) Layout {
	switch d {
	case North:
		l.North = open
	case South:
		l.South = open
	case East:
		l.East = open
	case West:
		l.West = open
	}
	return l
}

// Open returns a copy of l with side d opened.
func (l Layout) Open(d Direction) Layout { return l.With(d, true) }

// Exits lists the open sides.
func (l Layout) Exits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if l.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the layout as the open side letters in nsew order, or "-".
func (l Layout) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if l.Has(d) {
			b.WriteByte(d.String()[0])
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// ParseLayout parses side letters such as "ns" or "nsew". "-" and "" mean
// no exits.
func ParseLayout(s string) (Layout, error) {
	var l Layout
	if s == "-" {
		return l, nil
	}
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'n':
			l.North = true
		case 's':
			l.South = true
		case 'e':
			l.East = true
		case 'w':
			l.West = true
		default:
			return Layout{}, fmt.Errorf("invalid exit %q in layout %q", r, s)
		}
	}
	return l, nil
}

// RandomLayout opens each side with probability one half.
func RandomLayout(rng *pcore.RNG) Layout {
	return Layout{
		North: rng.Bool(),
		West:  rng.Bool(),
		South: rng.Bool(),
		East:  rng.Bool(),
	}
}
