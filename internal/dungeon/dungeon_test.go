package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cozy-spring/internal/core"
	"cozy-spring/internal/room"
)

var allOpen = room.Layout{North: true, South: true, East: true, West: true}

func requireAligned(t *testing.T, d *Dungeon) {
	t.Helper()
	for _, c := range d.Coords() {
		r, _ := d.Room(c)
		for _, dir := range room.Directions {
			n, ok := d.Room(c.Step(dir))
			if !ok {
				continue
			}
			require.Equal(t, r.Layout().Has(dir), n.Layout().Has(dir.Opposite()),
				"room %s side %s disagrees with neighbour", c, dir)
		}
	}
}

func TestNewSpawnsStartRoom(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 1, WithStartLayout(allOpen))

	require.Equal(t, 1, d.Len())
	r, ok := d.Room(Coord{})
	require.True(t, ok)
	assert.Equal(t, allOpen, r.Layout())
	assert.Equal(t, core.Size{W: 18, H: 11}, r.Size())
	assert.Equal(t, room.Generated, r.State())
}

func TestGenerateAdjacentOncePerRoom(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 7, WithStartLayout(allOpen))

	spawned := d.GenerateAdjacent(Coord{})
	assert.ElementsMatch(t, []Coord{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}, spawned)
	assert.Equal(t, 5, d.Len())
	assert.True(t, d.Expanded(Coord{}))

	assert.Nil(t, d.GenerateAdjacent(Coord{}))
	assert.Equal(t, 5, d.Len())
	assert.Nil(t, d.GenerateAdjacent(Coord{X: 40, Y: 40}))
}

func TestNeighbourExitsAlign(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d := New(DefaultConfig(), room.DefaultParams(), seed, WithStartLayout(allOpen))
		frontier := []Coord{{}}
		for step := 0; step < 6 && len(frontier) > 0; step++ {
			var next []Coord
			for _, c := range frontier {
				next = append(next, d.GenerateAdjacent(c)...)
			}
			frontier = next
		}
		requireAligned(t, d)
	}
}

func TestNeighbourExitPointsBack(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 3, WithStartLayout(room.Layout{East: true}))
	d.GenerateAdjacent(Coord{})

	east, ok := d.Room(Coord{X: 1})
	require.True(t, ok)
	assert.True(t, east.Layout().West, "room behind an exit must open back toward it")
	assert.True(t, east.ExitReachable(room.West))
}

func TestDeterministicForSeed(t *testing.T) {
	build := func() *Dungeon {
		d := New(DefaultConfig(), room.DefaultParams(), 99)
		d.GenerateAdjacent(Coord{})
		return d
	}
	a, b := build(), build()
	require.Equal(t, a.Coords(), b.Coords())
	for _, c := range a.Coords() {
		ra, _ := a.Room(c)
		rb, _ := b.Room(c)
		assert.Equal(t, ra.Seed(), rb.Seed())
		assert.Equal(t, ra.Layout(), rb.Layout())
		assert.Equal(t, ra.Walls().Cells(), rb.Walls().Cells())
	}
}

func TestCoordAt(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 1)
	tests := []struct {
		pos  core.Vec2
		want Coord
	}{
		{core.Vec2{X: 0, Y: 0}, Coord{0, 0}},
		{core.Vec2{X: 575.9, Y: 351.9}, Coord{0, 0}},
		{core.Vec2{X: 576, Y: 0}, Coord{1, 0}},
		{core.Vec2{X: -0.1, Y: 10}, Coord{-1, 0}},
		{core.Vec2{X: 100, Y: -353}, Coord{0, -2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.CoordAt(tt.pos), "pos %+v", tt.pos)
	}
	assert.Equal(t, core.Vec2{X: -576, Y: 704}, d.Origin(Coord{X: -1, Y: 2}))
}

func TestRoomAtAndEnter(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 5, WithStartLayout(room.Layout{South: true}))

	_, ok := d.RoomAt(core.Vec2{X: 10, Y: 400})
	assert.False(t, ok, "south neighbour not spawned yet")

	c, anchor, ok := d.Enter(core.Vec2{X: 100, Y: 100})
	require.True(t, ok)
	assert.Equal(t, Coord{}, c)
	assert.Equal(t, core.Vec2{}, anchor)

	r, ok := d.RoomAt(core.Vec2{X: 10, Y: 400})
	require.True(t, ok)
	assert.True(t, r.Layout().North)

	_, _, ok = d.Enter(core.Vec2{X: 5000, Y: 5000})
	assert.False(t, ok)
}

func TestWalkableMatchesTiles(t *testing.T) {
	cfg := DefaultConfig()
	d := New(cfg, room.DefaultParams(), 11, WithStartLayout(allOpen))
	r, _ := d.Room(Coord{})

	center := d.CenterOf(Coord{})
	assert.True(t, d.Walkable(center), "centre tile sits on every critical path")

	corner := core.Vec2{X: 1, Y: 1}
	assert.Equal(t, room.Walkable(r.Walls().Get(core.Pt(0, 0))), d.Walkable(corner))
	assert.False(t, d.Walkable(core.Vec2{X: -5000, Y: 0}))
}

func TestRegenerateKeepsLayout(t *testing.T) {
	d := New(DefaultConfig(), room.DefaultParams(), 2, WithStartLayout(room.Layout{West: true}))
	r, _ := d.Room(Coord{})
	before := r.Seed()

	require.True(t, d.Regenerate(Coord{}))
	assert.NotEqual(t, before, r.Seed())
	assert.Equal(t, room.Layout{West: true}, r.Layout())
	assert.False(t, d.Regenerate(Coord{X: 9}))
}

func TestRoomOptionsPerSlot(t *testing.T) {
	var seen []Coord
	d := New(DefaultConfig(), room.DefaultParams(), 4,
		WithStartLayout(room.Layout{North: true}),
		WithRoomOptions(func(c Coord) []room.Option {
			seen = append(seen, c)
			return nil
		}))
	d.GenerateAdjacent(Coord{})
	assert.Equal(t, []Coord{{0, 0}, {0, -1}}, seen)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.PitchX = 100
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TileSize = 0
	assert.Error(t, cfg.Validate())
}
