package entity

import (
	"cozy-spring/internal/attribute"
	"cozy-spring/internal/core"
	"cozy-spring/internal/logger"
	pcore "cozy-spring/pkg/core"
)

// EnemyAttribute keys an enemy's attribute set.
type EnemyAttribute uint8

const (
	EnemyMaxHealth EnemyAttribute = iota
	EnemySpeed
	EnemyMeleeDamage
)

// Loot is one entry of an enemy's drop table. Chance is out of 100.
type Loot struct {
	Chance int
	Drop   Drop
}

// DropSpawner receives the loot released by a dying enemy.
type DropSpawner interface {
	SpawnDrop(pos core.Vec2, d Drop)
}

// Enemy chases the player, shoots a randomised gun and drops loot.
type Enemy struct {
	Attr  *attribute.Set[EnemyAttribute]
	Pos   core.Vec2
	Vel   core.Vec2
	Gun   *Gun
	Melee bool

	health int
	dead   bool
	loot   []Loot
	drops  DropSpawner
	rng    *pcore.RNG
}

// NewEnemy creates an enemy whose gun stats are rolled from rng.
func NewEnemy(pos core.Vec2, bullets BulletSpawner, drops DropSpawner, rng *pcore.RNG, loot ...Loot) *Enemy {
	attr := attribute.New[EnemyAttribute]().
		SetBase(EnemyMaxHealth, 5).
		SetBase(EnemySpeed, 100).
		SetBase(EnemyMeleeDamage, 1)
	gun := NewGun(bullets, rng, FactionEnemy)
	gun.Randomize(rng)
	return &Enemy{
		Attr:   attr,
		Pos:    pos,
		Gun:    gun,
		health: int(attr.GetInt(EnemyMaxHealth)),
		loot:   loot,
		drops:  drops,
		rng:    rng,
	}
}

// Faction implements Target.
func (e *Enemy) Faction() Faction { return FactionEnemy }

// Health returns the remaining health.
func (e *Enemy) Health() int { return e.health }

// Dead reports whether the enemy has been killed.
func (e *Enemy) Dead() bool { return e.dead }

// Hit applies damage. On death a single 1..100 roll is compared against
// every loot entry and each entry whose chance exceeds it is dropped.
func (e *Enemy) Hit(amount int) bool {
	if e.dead {
		return false
	}
	e.health -= amount
	if e.health > 0 {
		return true
	}
	e.dead = true
	roll := e.rng.IntRange(1, 100)
	for _, l := range e.loot {
		if roll < l.Chance && e.drops != nil {
			e.drops.SpawnDrop(e.Pos, l.Drop)
		}
	}
	logger.Debug("enemy killed", "roll", roll)
	return true
}

// Steer sets the velocity toward target at the enemy's speed.
func (e *Enemy) Steer(target core.Vec2) core.Vec2 {
	if target == e.Pos {
		e.Vel = core.Vec2{}
	} else {
		e.Vel = target.Sub(e.Pos).Normalized().Scale(float64(e.Attr.Get(EnemySpeed)))
	}
	return e.Vel
}

// ShootAt aims at target and fires if the gun is ready.
func (e *Enemy) ShootAt(target core.Vec2) bool {
	if e.dead || e.Gun == nil {
		return false
	}
	e.Gun.Aim(e.Pos, target)
	return e.Gun.Shoot()
}

// Touch deals melee damage to p when the enemy is a melee type.
func (e *Enemy) Touch(p *Player) bool {
	if e.dead || !e.Melee {
		return false
	}
	return p.Hit(int(e.Attr.GetInt(EnemyMeleeDamage)))
}

// Update moves the enemy and advances its gun.
func (e *Enemy) Update(dt float64) {
	if e.dead {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	if e.Gun != nil {
		e.Gun.Update(dt)
	}
}
