// Package dungeon places generated rooms on a fixed world pitch and expands
// the map lazily as the player walks through exits.
package dungeon

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"cozy-spring/internal/core"
	"cozy-spring/internal/logger"
	"cozy-spring/internal/room"
	pcore "cozy-spring/pkg/core"
)

// Config sets the room dimensions and the world spacing between rooms.
type Config struct {
	RoomWidth  int `yaml:"room_width"`
	RoomHeight int `yaml:"room_height"`
	PitchX     int `yaml:"pitch_x"`
	PitchY     int `yaml:"pitch_y"`
	TileSize   int `yaml:"tile_size"`
}

// DefaultConfig returns 18×11 rooms of 32px tiles packed edge to edge.
func DefaultConfig() Config {
	return Config{
		RoomWidth:  18,
		RoomHeight: 11,
		PitchX:     576,
		PitchY:     352,
		TileSize:   32,
	}
}

// Validate rejects non-positive dimensions and pitches smaller than a room.
func (c Config) Validate() error {
	switch {
	case c.RoomWidth <= 0 || c.RoomHeight <= 0:
		return fmt.Errorf("dungeon: room size %dx%d must be positive", c.RoomWidth, c.RoomHeight)
	case c.TileSize <= 0:
		return fmt.Errorf("dungeon: tile size %d must be positive", c.TileSize)
	case c.PitchX < c.RoomWidth*c.TileSize || c.PitchY < c.RoomHeight*c.TileSize:
		return fmt.Errorf("dungeon: pitch %dx%d smaller than room %dx%d px",
			c.PitchX, c.PitchY, c.RoomWidth*c.TileSize, c.RoomHeight*c.TileSize)
	}
	return nil
}

// Coord addresses a room slot on the world pitch.
type Coord struct {
	X int
	Y int
}

// Step returns the neighbouring slot toward d.
func (c Coord) Step(d room.Direction) Coord {
	off := d.Offset()
	return Coord{X: c.X + off.X, Y: c.Y + off.Y}
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

type slot struct {
	room     *room.Room
	expanded bool
}

// Option configures a Dungeon.
type Option func(*Dungeon)

// WithStartLayout fixes the exits of the start room instead of drawing them.
func WithStartLayout(l room.Layout) Option {
	return func(d *Dungeon) { d.startLayout = &l }
}

// WithRoomOptions supplies per-room options, typically tile layers.
func WithRoomOptions(fn func(Coord) []room.Option) Option {
	return func(d *Dungeon) { d.roomOptions = fn }
}

// Dungeon owns every room spawned so far.
type Dungeon struct {
	cfg    Config
	params room.Params
	rng    *pcore.RNG
	rooms  map[Coord]*slot

	startLayout *room.Layout
	roomOptions func(Coord) []room.Option
}

// New creates a dungeon with its start room at (0,0).
func New(cfg Config, params room.Params, seed int64, opts ...Option) *Dungeon {
	d := &Dungeon{
		cfg:    cfg,
		params: params,
		rng:    pcore.NewRNG(seed),
		rooms:  make(map[Coord]*slot),
	}
	for _, opt := range opts {
		opt(d)
	}
	start := Coord{}
	if d.startLayout != nil {
		d.spawn(start, *d.startLayout)
	} else {
		d.Spawn(start)
	}
	return d
}

// Config returns the placement configuration.
func (d *Dungeon) Config() Config { return d.cfg }

// Spawn generates a room at c. Sides facing an existing neighbour copy that
// neighbour's exit back; the rest are drawn at random. An existing room at c
// is returned unchanged.
func (d *Dungeon) Spawn(c Coord) *room.Room {
	if s, ok := d.rooms[c]; ok {
		return s.room
	}
	var layout room.Layout
	for _, dir := range room.Directions {
		open := d.rng.Bool()
		if n, ok := d.rooms[c.Step(dir)]; ok {
			open = n.room.Layout().Has(dir.Opposite())
		}
		layout = layout.With(dir, open)
	}
	return d.spawn(c, layout)
}

func (d *Dungeon) spawn(c Coord, layout room.Layout) *room.Room {
	var opts []room.Option
	if d.roomOptions != nil {
		opts = d.roomOptions(c)
	}
	r := room.New(d.cfg.RoomWidth, d.cfg.RoomHeight, d.params, opts...)
	r.Generate(d.rng.Uint32(), layout)
	d.rooms[c] = &slot{room: r}
	logger.Debug("room spawned", "coord", c.String(), "exits", layout.String(), "seed", r.Seed())
	return r
}

// GenerateAdjacent spawns a room behind every open exit of the room at c.
// It runs once per room; later calls return nil.
func (d *Dungeon) GenerateAdjacent(c Coord) []Coord {
	s, ok := d.rooms[c]
	if !ok {
		logger.Error("no room to expand", "coord", c.String())
		return nil
	}
	if s.expanded {
		return nil
	}
	s.expanded = true

	var spawned []Coord
	for _, dir := range s.room.Layout().Exits() {
		n := c.Step(dir)
		if _, exists := d.rooms[n]; exists {
			logger.Debug("duplicated room", "coord", n.String())
			continue
		}
		d.Spawn(n)
		spawned = append(spawned, n)
	}
	return spawned
}

// Expanded reports whether GenerateAdjacent has run for c.
func (d *Dungeon) Expanded(c Coord) bool {
	s, ok := d.rooms[c]
	return ok && s.expanded
}

// Room returns the room at c.
func (d *Dungeon) Room(c Coord) (*room.Room, bool) {
	s, ok := d.rooms[c]
	if !ok {
		return nil, false
	}
	return s.room, true
}

// Len returns the number of spawned rooms.
func (d *Dungeon) Len() int { return len(d.rooms) }

// Coords lists spawned slots sorted by row, then column.
func (d *Dungeon) Coords() []Coord {
	out := make([]Coord, 0, len(d.rooms))
	for c := range d.rooms {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return out
}

// Origin returns the world position of the top-left corner of slot c.
func (d *Dungeon) Origin(c Coord) core.Vec2 {
	return core.Vec2{X: float64(c.X * d.cfg.PitchX), Y: float64(c.Y * d.cfg.PitchY)}
}

// CoordAt maps a world position to its slot.
func (d *Dungeon) CoordAt(pos core.Vec2) Coord {
	return Coord{
		X: int(math.Floor(pos.X / float64(d.cfg.PitchX))),
		Y: int(math.Floor(pos.Y / float64(d.cfg.PitchY))),
	}
}

// RoomAt returns the room covering a world position.
func (d *Dungeon) RoomAt(pos core.Vec2) (*room.Room, bool) {
	return d.Room(d.CoordAt(pos))
}

// CellAt maps a world position to its slot and local tile. ok is false when
// the position falls in the gap between rooms.
func (d *Dungeon) CellAt(pos core.Vec2) (Coord, core.Point, bool) {
	c := d.CoordAt(pos)
	local := pos.Sub(d.Origin(c))
	ts := float64(d.cfg.TileSize)
	p := core.Pt(int(math.Floor(local.X/ts)), int(math.Floor(local.Y/ts)))
	ok := p.X < d.cfg.RoomWidth && p.Y < d.cfg.RoomHeight
	return c, p, ok
}

// Walkable reports whether a world position lies on a clear tile of a
// spawned room.
func (d *Dungeon) Walkable(pos core.Vec2) bool {
	c, p, ok := d.CellAt(pos)
	if !ok {
		return false
	}
	r, ok := d.Room(c)
	if !ok {
		return false
	}
	return room.Walkable(r.Walls().Get(p))
}

// Enter is the player-movement hook: it resolves the room under pos, expands
// its neighbours and returns the camera anchor of that room.
func (d *Dungeon) Enter(pos core.Vec2) (Coord, core.Vec2, bool) {
	c := d.CoordAt(pos)
	if _, ok := d.rooms[c]; !ok {
		return c, core.Vec2{}, false
	}
	if spawned := d.GenerateAdjacent(c); len(spawned) > 0 {
		logger.Debug("rooms expanded", "from", c.String(), "count", len(spawned))
	}
	return c, d.Origin(c), true
}

// CenterOf returns the world position of the centre tile of slot c.
func (d *Dungeon) CenterOf(c Coord) core.Vec2 {
	ts := float64(d.cfg.TileSize)
	center := core.Pt(d.cfg.RoomWidth/2, d.cfg.RoomHeight/2)
	return d.Origin(c).Add(core.Vec2{X: (float64(center.X) + 0.5) * ts, Y: (float64(center.Y) + 0.5) * ts})
}

// Regenerate rebuilds the room at c with a fresh seed, keeping its layout.
func (d *Dungeon) Regenerate(c Coord) bool {
	s, ok := d.rooms[c]
	if !ok {
		return false
	}
	s.room.Generate(d.rng.Uint32(), s.room.Layout())
	return true
}
