package entity

import (
	"slices"

	"cozy-spring/internal/core"
)

// HitRadius is the contact distance between actors, bullets and drops.
const HitRadius = 12.0

// World advances every actor of the active room and resolves contacts.
// It implements BulletSpawner and DropSpawner for the actors it owns.
type World struct {
	Player  *Player
	Enemies []*Enemy
	Bullets []*Bullet
	Drops   []*Drop

	// Solid reports whether a world position is blocked. Nil means open.
	Solid func(core.Vec2) bool
}

// SpawnBullet implements BulletSpawner.
func (w *World) SpawnBullet(pos, dir core.Vec2, p BulletParams) {
	w.Bullets = append(w.Bullets, NewBullet(pos, dir, p))
}

// SpawnDrop implements DropSpawner.
func (w *World) SpawnDrop(pos core.Vec2, d Drop) {
	d.Pos = pos
	w.Drops = append(w.Drops, &d)
}

func (w *World) solid(p core.Vec2) bool { return w.Solid != nil && w.Solid(p) }

func touching(a, b core.Vec2) bool { return a.Sub(b).Len() <= HitRadius }

// Step advances the world by dt seconds.
func (w *World) Step(dt float64) {
	if w.Player != nil {
		w.Player.Update(dt)
	}

	for _, e := range w.Enemies {
		if e.Dead() {
			continue
		}
		if w.Player != nil {
			e.Steer(w.Player.Pos)
			e.ShootAt(w.Player.Pos)
		}
		prev := e.Pos
		e.Update(dt)
		if w.solid(e.Pos) {
			e.Pos = prev
		}
		if w.Player != nil && touching(e.Pos, w.Player.Pos) {
			e.Touch(w.Player)
		}
	}

	for _, b := range w.Bullets {
		prev := b.Pos
		b.Update(dt)
		if !b.Alive() {
			continue
		}
		if w.solid(b.Pos) {
			normal := prev.Sub(b.Pos)
			if b.HitWall(normal) {
				b.Pos = prev
			}
			continue
		}
		w.resolveHit(b)
	}

	if w.Player != nil {
		for _, d := range w.Drops {
			if !d.Taken() && touching(d.Pos, w.Player.Pos) {
				d.PickUp(w.Player)
			}
		}
	}

	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *Bullet) bool { return !b.Alive() })
	w.Drops = slices.DeleteFunc(w.Drops, func(d *Drop) bool { return d.Taken() })
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *Enemy) bool { return e.Dead() })
}

func (w *World) resolveHit(b *Bullet) {
	if b.Faction == FactionEnemy {
		if w.Player != nil && touching(b.Pos, w.Player.Pos) {
			b.HitTarget(w.Player)
		}
		return
	}
	for _, e := range w.Enemies {
		if !e.Dead() && touching(b.Pos, e.Pos) {
			b.HitTarget(e)
			return
		}
	}
}
