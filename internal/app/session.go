package app

import (
	"fmt"

	"cozy-spring/internal/config"
	"cozy-spring/internal/core"
	"cozy-spring/internal/dungeon"
	"cozy-spring/internal/entity"
	"cozy-spring/internal/logger"
	"cozy-spring/internal/room"
	"cozy-spring/internal/ui"
	pcore "cozy-spring/pkg/core"
)

// Loot dropped by enemies spawned in fresh rooms.
var enemyLoot = []entity.Loot{{Chance: 35, Drop: entity.Drop{GainedHealth: 2}}}

// Session is the headless state of the viewer: the dungeon, the actors of
// the current room and the player's position in the world.
type Session struct {
	cfg     *config.Config
	seed    int64
	rng     *pcore.RNG
	dungeon *dungeon.Dungeon
	world   *entity.World

	current dungeon.Coord
	anchor  core.Vec2
	visited map[dungeon.Coord]bool

	roomOptions func(dungeon.Coord) []room.Option
}

// NewSession builds a dungeon for cfg.Viewer.Seed. roomOptions, when non-nil,
// supplies the paint layers of each spawned room.
func NewSession(cfg *config.Config, roomOptions func(dungeon.Coord) []room.Option) *Session {
	s := &Session{cfg: cfg, roomOptions: roomOptions}
	s.Reset(cfg.Viewer.Seed)
	return s
}

// Reset discards the dungeon and starts over from seed. The start room opens
// on every side.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.rng = pcore.NewRNG(seed)
	opts := []dungeon.Option{dungeon.WithStartLayout(room.Layout{North: true, South: true, East: true, West: true})}
	if s.roomOptions != nil {
		opts = append(opts, dungeon.WithRoomOptions(s.roomOptions))
	}
	s.dungeon = dungeon.New(s.cfg.Dungeon, s.cfg.Room.Params, seed, opts...)
	s.world = &entity.World{Solid: func(p core.Vec2) bool { return !s.dungeon.Walkable(p) }}

	player := entity.NewPlayer(s.dungeon.CenterOf(dungeon.Coord{}))
	player.Gun = entity.NewGun(s.world, s.rng, entity.FactionPlayer)
	s.world.Player = player
	s.visited = map[dungeon.Coord]bool{{}: true}
	s.current = dungeon.Coord{}
	s.enter()
	logger.Info("session reset", "seed", seed)
}

// Seed returns the seed of the current dungeon.
func (s *Session) Seed() int64 { return s.seed }

// Dungeon returns the dungeon.
func (s *Session) Dungeon() *dungeon.Dungeon { return s.dungeon }

// World returns the actors of the current room.
func (s *Session) World() *entity.World { return s.world }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.world.Player }

// Current returns the slot the player stands in.
func (s *Session) Current() dungeon.Coord { return s.current }

// Anchor returns the world position of the current room's top-left corner.
func (s *Session) Anchor() core.Vec2 { return s.anchor }

// Room returns the current room.
func (s *Session) Room() *room.Room {
	r, _ := s.dungeon.Room(s.current)
	return r
}

// Parameters exposes the room parameters for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return s.cfg.Room.Params.Parameters()
}

// SetParam changes one room parameter and rebuilds the dungeon with the
// current seed.
func (s *Session) SetParam(key, value string) error {
	if err := s.cfg.Room.Params.Set(key, value); err != nil {
		return err
	}
	s.Reset(s.seed)
	return nil
}

// Move walks the player along input for dt seconds. Each axis is resolved on
// its own so the player slides along walls.
func (s *Session) Move(input core.Vec2, dt float64) {
	p := s.world.Player
	step := p.Velocity(input).Scale(dt)
	if next := p.Pos.Add(core.Vec2{X: step.X}); s.dungeon.Walkable(next) {
		p.Pos = next
	}
	if next := p.Pos.Add(core.Vec2{Y: step.Y}); s.dungeon.Walkable(next) {
		p.Pos = next
	}
	s.enter()
}

// Aim points the player's gun at a world position and sets the trigger.
func (s *Session) Aim(target core.Vec2, shooting bool) {
	p := s.world.Player
	p.Aim(target)
	if p.Gun != nil {
		p.Gun.SetShooting(shooting)
	}
}

// Step advances the actors. A dead player restarts the dungeon.
func (s *Session) Step(dt float64) {
	s.world.Step(dt)
	if s.world.Player.Dead() {
		logger.Info("player died, restarting", "seed", s.seed)
		s.Reset(s.seed)
	}
}

// Regenerate rebuilds the current room in place. A player left inside a
// wall is moved to the room's centre.
func (s *Session) Regenerate() {
	s.dungeon.Regenerate(s.current)
	if !s.dungeon.Walkable(s.world.Player.Pos) {
		s.world.Player.Pos = s.dungeon.CenterOf(s.current)
	}
}

// Status summarises the session for the HUD.
func (s *Session) Status() ui.Status {
	layout := "-"
	if r := s.Room(); r != nil {
		layout = r.Layout().String()
	}
	return ui.Status{
		Title: "cozy-spring",
		Lines: []string{
			fmt.Sprintf("seed %d", s.seed),
			fmt.Sprintf("room %s exits %s", s.current, layout),
			fmt.Sprintf("rooms %d enemies %d", s.dungeon.Len(), len(s.world.Enemies)),
		},
		Hearts: s.world.Player.Hearts(),
	}
}

func (s *Session) enter() {
	c, anchor, ok := s.dungeon.Enter(s.world.Player.Pos)
	if !ok {
		return
	}
	s.anchor = anchor
	if c == s.current {
		return
	}
	logger.Debug("entered room", "coord", c.String())
	s.current = c
	s.world.Enemies = nil
	s.world.Bullets = nil
	s.world.Drops = nil
	if !s.visited[c] {
		s.visited[c] = true
		s.populate(c)
	}
}

// populate places one to three enemies on clear tiles away from the player.
func (s *Session) populate(c dungeon.Coord) {
	r, ok := s.dungeon.Room(c)
	if !ok {
		return
	}
	size := r.Size()
	if size.W < 3 || size.H < 3 {
		return
	}
	ts := float64(s.cfg.Dungeon.TileSize)
	want := s.rng.IntRange(1, 3)
	for tries := 0; tries < 32 && len(s.world.Enemies) < want; tries++ {
		tile := core.Pt(s.rng.IntRange(1, size.W-2), s.rng.IntRange(1, size.H-2))
		if !room.Walkable(r.Walls().Get(tile)) {
			continue
		}
		pos := s.dungeon.Origin(c).Add(core.Vec2{X: (float64(tile.X) + 0.5) * ts, Y: (float64(tile.Y) + 0.5) * ts})
		if pos.Sub(s.world.Player.Pos).Len() < 3*ts {
			continue
		}
		e := entity.NewEnemy(pos, s.world, s.world, s.rng, enemyLoot...)
		e.Melee = s.rng.Bool()
		s.world.Enemies = append(s.world.Enemies, e)
	}
	logger.Debug("room populated", "coord", c.String(), "enemies", len(s.world.Enemies))
}
