package entity

import (
	"cozy-spring/internal/attribute"
	"cozy-spring/internal/core"
)

// BulletAttribute keys a bullet's attribute set.
type BulletAttribute uint8

const (
	BulletPower BulletAttribute = iota
	BulletSpeed
	BulletMaxBounces
	BulletLifetime
)

// BulletParams describes a bullet at the moment it is fired.
type BulletParams struct {
	Power                float64
	Speed                float64
	MaxBounces           int
	VelocityPreservation float64
	PowerPreservation    float64
	Lifetime             float64
	Faction              Faction
}

// DefaultBulletParams returns a plain non-bouncing player bullet.
func DefaultBulletParams() BulletParams {
	return BulletParams{
		Power:                1,
		Speed:                400,
		VelocityPreservation: 1,
		PowerPreservation:    1,
		Lifetime:             0.2,
		Faction:              FactionPlayer,
	}
}

// BulletState tracks a bullet through its short life.
type BulletState uint8

const (
	BulletFlying BulletState = iota
	BulletDecayed
	BulletExploded
)

// Bullet is a projectile that bounces off walls and damages the opposing
// faction.
type Bullet struct {
	Attr    *attribute.Set[BulletAttribute]
	Pos     core.Vec2
	Vel     core.Vec2
	Faction Faction

	age                  float64
	bounces              int
	velocityPreservation float64
	powerPreservation    float64
	state                BulletState
}

// NewBullet fires a bullet from pos along dir.
func NewBullet(pos, dir core.Vec2, p BulletParams) *Bullet {
	attr := attribute.New[BulletAttribute]().
		SetBase(BulletPower, float32(p.Power)).
		SetBase(BulletSpeed, float32(p.Speed)).
		SetBase(BulletMaxBounces, float32(p.MaxBounces)).
		SetBase(BulletLifetime, float32(p.Lifetime))
	return &Bullet{
		Attr:                 attr,
		Pos:                  pos,
		Vel:                  dir.Normalized().Scale(float64(attr.Get(BulletSpeed))),
		Faction:              p.Faction,
		bounces:              int(attr.GetUint(BulletMaxBounces)),
		velocityPreservation: p.VelocityPreservation,
		powerPreservation:    p.PowerPreservation,
	}
}

// State returns the lifecycle state.
func (b *Bullet) State() BulletState { return b.state }

// Alive reports whether the bullet is still flying.
func (b *Bullet) Alive() bool { return b.state == BulletFlying }

// Age returns the seconds since firing.
func (b *Bullet) Age() float64 { return b.age }

// Bounces returns the remaining wall bounces.
func (b *Bullet) Bounces() int { return b.bounces }

// Power returns the current damage value.
func (b *Bullet) Power() float32 { return b.Attr.Get(BulletPower) }

// Update moves the bullet and decays it once its lifetime has passed.
func (b *Bullet) Update(dt float64) {
	if !b.Alive() {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.age += dt
	if b.age > float64(b.Attr.Get(BulletLifetime)) {
		b.state = BulletDecayed
	}
}

// HitWall bounces the bullet off a wall with the given surface normal, or
// explodes it when no bounces remain. It reports whether the bullet survived.
// A zero normal reverses the velocity.
func (b *Bullet) HitWall(normal core.Vec2) bool {
	if !b.Alive() {
		return false
	}
	if b.bounces == 0 {
		b.state = BulletExploded
		return false
	}
	b.bounces--
	b.Vel = reflect(b.Vel, normal).Scale(b.velocityPreservation)
	b.Attr.ApplyEffect(attribute.NewEffect(attribute.Modifier[BulletAttribute]{
		Attribute: BulletPower,
		Operation: attribute.Multiply(float32(b.powerPreservation)),
	}))
	return true
}

// HitTarget explodes the bullet on t and damages it by the rounded power
// when t belongs to the other faction.
func (b *Bullet) HitTarget(t Target) bool {
	if !b.Alive() {
		return false
	}
	b.state = BulletExploded
	if t.Faction() == b.Faction {
		return false
	}
	return t.Hit(int(b.Attr.GetInt(BulletPower)))
}

func reflect(v, normal core.Vec2) core.Vec2 {
	n := normal.Normalized()
	if n == (core.Vec2{}) {
		return v.Scale(-1)
	}
	d := 2 * (v.X*n.X + v.Y*n.Y)
	return v.Sub(n.Scale(d))
}
