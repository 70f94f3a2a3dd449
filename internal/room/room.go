// Package room generates the tile layout of a single dungeon room from a
// seed, an exit layout and a Params record.
//
// Generation evaluates two noise fields per cell. The growth field mixes an
// edge-proximity term with ridged gradient noise and is forced to -Inf along
// the corridors joining the room centre to each open exit, so those cells can
// never become walls. The special field gates sparse lone trees. Floor and
// wall grids are classified independently from the same fields and handed to
// the injected tile layers.
package room

import (
	"fmt"
	"math"

	"cozy-spring/internal/core"
	"cozy-spring/internal/logger"
)

// State reports whether a room has been generated.
type State uint8

const (
	Uninitialized State = iota
	Generated
)

func (s State) String() string {
	if s == Generated {
		return "generated"
	}
	return "uninitialized"
}

// Option configures a Room at construction.
type Option func(*Room)

// WithFloorLayer sets the layer that receives floor grids.
func WithFloorLayer(l *FloorLayer) Option {
	return func(r *Room) { r.floorLayer = l }
}

// WithWallsLayer sets the layer that receives wall grids.
func WithWallsLayer(l *WallsLayer) Option {
	return func(r *Room) { r.wallsLayer = l }
}

// Room owns the generated grids of one room.
type Room struct {
	width  int
	height int
	params Params

	floorLayer *FloorLayer
	wallsLayer *WallsLayer

	state  State
	seed   uint32
	layout Layout
	growth *GrowthField
	floor  *core.Grid[FloorTile]
	walls  *core.Grid[WallTile]
}

// New creates an ungenerated room. Dimensions below one are raised to one.
func New(width, height int, p Params, opts ...Option) *Room {
	r := &Room{
		width:  max(width, 1),
		height: max(height, 1),
		params: p,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.floor = core.NewGrid[FloorTile](r.width, r.height)
	r.walls = core.NewGrid[WallTile](r.width, r.height)
	return r
}

// Generate classifies every cell for seed and layout and emits the grids to
// the configured layers. Calling it again regenerates from scratch.
func (r *Room) Generate(seed uint32, layout Layout) {
	r.seed = seed
	r.layout = layout
	r.growth = NewGrowthField(r.width, r.height, seed, r.params, layout)
	special := NewSpecialField(seed, r.params)

	floor := core.NewGrid[FloorTile](r.width, r.height)
	walls := core.NewGrid[WallTile](r.width, r.height)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			p := core.Pt(x, y)
			growth := float64(r.growth.At(x, y))
			floor.Set(p, r.classifyFloor(growth))
			walls.Set(p, r.classifyWall(x, y, growth, float64(special.At(x, y))))
		}
	}
	r.floor = floor
	r.walls = walls
	r.state = Generated

	if r.floorLayer != nil {
		r.floorLayer.SetTiles(floor)
	}
	if r.wallsLayer != nil {
		r.wallsLayer.SetTiles(walls)
	}
	logger.Debug("room generated",
		"seed", seed,
		"size", fmt.Sprintf("%dx%d", r.width, r.height),
		"exits", layout.String(),
	)
}

func (r *Room) classifyFloor(growth float64) FloorTile {
	switch {
	case growth >= r.params.TallGrassGrowthCutoff:
		return FloorTallGrass
	case growth >= r.params.GrassGrowthCutoff:
		return FloorGrass
	default:
		return FloorDirt
	}
}

func (r *Room) classifyWall(x, y int, growth, special float64) WallTile {
	switch {
	case special >= r.params.LoneTreeSpecialCutoff && growth >= r.params.LoneTreeGrowthCutoff:
		return WallLoneTree
	case r.IsEdgeWall(x, y) || growth >= r.params.TreeGrowthCutoff:
		return WallWall
	default:
		return WallClear
	}
}

// State returns the generation state.
func (r *Room) State() State { return r.state }

// Seed returns the seed of the last generation.
func (r *Room) Seed() uint32 { return r.seed }

// Layout returns the exit layout of the last generation.
func (r *Room) Layout() Layout { return r.layout }

// Size returns the room dimensions in cells.
func (r *Room) Size() core.Size { return core.Size{W: r.width, H: r.height} }

// Params returns the generation parameters.
func (r *Room) Params() Params { return r.params }

// Center returns the centre cell.
func (r *Room) Center() core.Point { return core.Pt(r.width/2, r.height/2) }

// Floor returns the floor grid. It is all FloorNone before Generate.
func (r *Room) Floor() *core.Grid[FloorTile] { return r.floor }

// Walls returns the wall grid.
func (r *Room) Walls() *core.Grid[WallTile] { return r.walls }

// Growth returns the growth field of the last generation, or nil.
func (r *Room) Growth() *GrowthField { return r.growth }

func (r *Room) onBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == r.width-1 || y == r.height-1
}

// IsEdgeWall reports whether (x, y) is a boundary cell outside every exit
// opening.
func (r *Room) IsEdgeWall(x, y int) bool {
	return r.onBoundary(x, y) && !r.InOpening(x, y)
}

// InOpening reports whether (x, y) belongs to the opening of an open side.
func (r *Room) InOpening(x, y int) bool {
	for _, d := range Directions {
		if r.layout.Has(d) && r.inSideOpening(d, x, y) {
			return true
		}
	}
	return false
}

// openingHalfWidth is the distance from a side midpoint that still counts as
// the opening. It matches the far end of the critical path wedge.
func (r *Room) openingHalfWidth() float64 {
	return math.Max(float64(r.params.ExitSize)/2, 0.5)
}

func (r *Room) inSideOpening(d Direction, x, y int) bool {
	half := r.openingHalfWidth()
	midX := float64(r.width-1) / 2
	midY := float64(r.height-1) / 2
	switch d {
	case North:
		return y == 0 && math.Abs(float64(x)-midX) <= half
	case South:
		return y == r.height-1 && math.Abs(float64(x)-midX) <= half
	case East:
		return x == r.width-1 && math.Abs(float64(y)-midY) <= half
	case West:
		return x == 0 && math.Abs(float64(y)-midY) <= half
	}
	return false
}

// Opening returns the boundary cells of side d's opening, or nil when the
// side is closed.
func (r *Room) Opening(d Direction) []core.Point {
	if !r.layout.Has(d) {
		return nil
	}
	var cells []core.Point
	switch d {
	case North, South:
		y := 0
		if d == South {
			y = r.height - 1
		}
		for x := 0; x < r.width; x++ {
			if r.inSideOpening(d, x, y) {
				cells = append(cells, core.Pt(x, y))
			}
		}
	case East, West:
		x := 0
		if d == East {
			x = r.width - 1
		}
		for y := 0; y < r.height; y++ {
			if r.inSideOpening(d, x, y) {
				cells = append(cells, core.Pt(x, y))
			}
		}
	}
	return cells
}
