package app

import (
	"testing"

	"cozy-spring/internal/config"
	"cozy-spring/internal/core"
	"cozy-spring/internal/dungeon"
	"cozy-spring/internal/entity"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Viewer.Seed = 21
	return NewSession(cfg, nil)
}

func TestSessionStartsInOpenRoom(t *testing.T) {
	s := newTestSession(t)
	if s.Current() != (dungeon.Coord{}) {
		t.Fatalf("expected to start at the origin, got %v", s.Current())
	}
	if !s.Dungeon().Walkable(s.Player().Pos) {
		t.Fatalf("player should start on a clear tile")
	}
	if got := s.Dungeon().Len(); got != 5 {
		t.Fatalf("start room should expand into four neighbours, got %d rooms", got)
	}
	if len(s.World().Enemies) != 0 {
		t.Fatalf("the start room has no enemies")
	}
}

func TestSessionWalksThroughEastExit(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 30; i++ {
		s.Move(core.Vec2{X: 1}, 0.1)
	}
	want := dungeon.Coord{X: 1}
	if s.Current() != want {
		t.Fatalf("expected to reach %v, at %v (pos %+v)", want, s.Current(), s.Player().Pos)
	}
	if s.Anchor() != s.Dungeon().Origin(want) {
		t.Fatalf("camera anchor should follow the room, got %+v", s.Anchor())
	}
	if !s.Dungeon().Expanded(want) {
		t.Fatalf("entering a room should expand it")
	}
	if n := len(s.World().Enemies); n > 3 {
		t.Fatalf("fresh rooms hold at most three enemies, got %d", n)
	}
	for _, e := range s.World().Enemies {
		if s.Dungeon().CoordAt(e.Pos) != want {
			t.Fatalf("enemy spawned outside the room at %+v", e.Pos)
		}
	}
}

func TestSessionWallsBlockMovement(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 200; i++ {
		s.Move(core.Vec2{X: 1, Y: 1}, 0.1)
		if !s.Dungeon().Walkable(s.Player().Pos) {
			t.Fatalf("player walked into a wall at %+v", s.Player().Pos)
		}
	}
}

func TestSessionRegenerateKeepsLayout(t *testing.T) {
	s := newTestSession(t)
	before := s.Room().Layout()
	seed := s.Room().Seed()
	s.Regenerate()
	if s.Room().Layout() != before {
		t.Fatalf("regeneration changed the layout")
	}
	if s.Room().Seed() == seed {
		t.Fatalf("regeneration should draw a fresh seed")
	}
	if !s.Dungeon().Walkable(s.Player().Pos) {
		t.Fatalf("player should stay on a clear tile")
	}
}

func TestSessionSetParam(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetParam("no_such_key", "1"); err == nil {
		t.Fatalf("expected an error for an unknown key")
	}
	if err := s.SetParam("exit_size", "4"); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if p, _ := s.Parameters().Lookup("exit_size"); p.Value != "4" {
		t.Fatalf("parameter snapshot not updated: %+v", p)
	}
	if s.Room().Params().ExitSize != 4 {
		t.Fatalf("dungeon should be rebuilt with the new parameters")
	}
	if s.Seed() != 21 {
		t.Fatalf("SetParam should keep the seed, got %d", s.Seed())
	}
}

func TestSessionShooting(t *testing.T) {
	s := newTestSession(t)
	target := s.Player().Pos.Add(core.Vec2{X: 100})
	s.Aim(target, true)
	if len(s.World().Bullets) == 0 {
		t.Fatalf("pulling the trigger should fire")
	}
	s.Aim(target, false)
	s.Step(0.01)
	if s.Player().Health() != s.Player().MaxHealth() {
		t.Fatalf("player bullets must not hurt the player")
	}
}

func TestSessionStatus(t *testing.T) {
	s := newTestSession(t)
	st := s.Status()
	if st.Title == "" || len(st.Lines) != 3 {
		t.Fatalf("unexpected status %+v", st)
	}
	if len(st.Hearts) != s.Player().HeartContainers() {
		t.Fatalf("status hearts = %d", len(st.Hearts))
	}
	for _, h := range st.Hearts {
		if h != entity.HeartFull {
			t.Fatalf("fresh player should have full hearts")
		}
	}
}
