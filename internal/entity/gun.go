package entity

import (
	"cozy-spring/internal/attribute"
	"cozy-spring/internal/core"
	pcore "cozy-spring/pkg/core"
)

// GunStat names a gun-level stat.
type GunStat uint8

const (
	StatSpread GunStat = iota
	StatCooldown
	StatBulletCount
	StatMultishotSpread
	// StatBullets marks keys that configure the fired bullets.
	StatBullets
)

// GunAttribute keys a gun's attribute set. Bullet is only meaningful when
// Stat is StatBullets.
type GunAttribute struct {
	Stat   GunStat
	Bullet BulletAttribute
}

var (
	GunSpread          = GunAttribute{Stat: StatSpread}
	GunCooldown        = GunAttribute{Stat: StatCooldown}
	GunBulletCount     = GunAttribute{Stat: StatBulletCount}
	GunMultishotSpread = GunAttribute{Stat: StatMultishotSpread}
)

// Bullets keys the bullet attribute b as seen by the gun.
func Bullets(b BulletAttribute) GunAttribute {
	return GunAttribute{Stat: StatBullets, Bullet: b}
}

// GunDistance is how far from its holder a gun is drawn, in pixels.
const GunDistance = 24.0

// BulletSpawner receives the bullets fired by a gun.
type BulletSpawner interface {
	SpawnBullet(pos, dir core.Vec2, p BulletParams)
}

// Gun fires bullets on a cooldown.
type Gun struct {
	Attr     *attribute.Set[GunAttribute]
	Pos      core.Vec2
	Rotation float64
	Faction  Faction

	spawner  BulletSpawner
	rng      *pcore.RNG
	cooldown *core.Timer
	shooting bool
}

// NewGun returns a single-shot gun with the starter bullet.
func NewGun(spawner BulletSpawner, rng *pcore.RNG, faction Faction) *Gun {
	attr := attribute.New[GunAttribute]().
		SetBase(GunSpread, 0).
		SetBase(GunCooldown, 0.25).
		SetBase(GunBulletCount, 1).
		SetBase(GunMultishotSpread, 0).
		SetBase(Bullets(BulletSpeed), 200).
		SetBase(Bullets(BulletPower), 0.5).
		SetBase(Bullets(BulletMaxBounces), 0).
		SetBase(Bullets(BulletLifetime), 0.5)
	return &Gun{
		Attr:     attr,
		Faction:  faction,
		spawner:  spawner,
		rng:      rng,
		cooldown: core.NewTimer(0),
	}
}

// Randomize rolls every stat within the enemy gun ranges.
func (g *Gun) Randomize(rng *pcore.RNG) {
	roll := func(lo, hi float64) float32 { return float32(rng.FloatRange(lo, hi)) }
	g.Attr.
		SetBase(GunSpread, roll(0, 0.8)).
		SetBase(GunCooldown, roll(0.1, 1.0)).
		SetBase(GunBulletCount, roll(1, 5)).
		SetBase(GunMultishotSpread, roll(0.4, 1.5)).
		SetBase(Bullets(BulletSpeed), roll(200, 800)).
		SetBase(Bullets(BulletPower), roll(0.5, 3)).
		SetBase(Bullets(BulletMaxBounces), roll(0, 3)).
		SetBase(Bullets(BulletLifetime), roll(0.1, 3))
}

// Aim places the gun GunDistance from holder, facing target.
func (g *Gun) Aim(holder, target core.Vec2) {
	facing := target.Sub(holder).Normalized()
	g.Pos = holder.Add(facing.Scale(GunDistance))
	g.Rotation = facing.Angle()
}

// OnCooldown reports whether the gun is waiting to fire again.
func (g *Gun) OnCooldown() bool { return !g.cooldown.Stopped() }

// Shooting reports whether the trigger is held.
func (g *Gun) Shooting() bool { return g.shooting }

// SetShooting updates the trigger state. Pressing fires immediately.
func (g *Gun) SetShooting(shooting bool) {
	if shooting && !g.shooting {
		g.Shoot()
	}
	g.shooting = shooting
}

// Shoot fires one volley unless the gun is cooling down.
func (g *Gun) Shoot() bool {
	if g.OnCooldown() {
		return false
	}
	g.cooldown.SetWait(float64(g.Attr.Get(GunCooldown)))
	g.cooldown.Start()

	count := max(int(g.Attr.GetUint(GunBulletCount)), 1)
	fan := float64(g.Attr.Get(GunMultishotSpread))
	spread := float64(g.Attr.Get(GunSpread))
	params := g.BulletParams()
	for i := 0; i < count; i++ {
		angle := g.Rotation + fanOffset(count, fan, i)
		if spread > 0 && g.rng != nil {
			angle += g.rng.FloatRange(-spread, spread) / 2
		}
		if g.spawner != nil {
			g.spawner.SpawnBullet(g.Pos, core.FromAngle(angle), params)
		}
	}
	return true
}

// Update advances the cooldown and refires while the trigger is held.
func (g *Gun) Update(dt float64) {
	if g.cooldown.Advance(dt) && g.shooting {
		g.Shoot()
	}
}

// BulletParams resolves the bullet stats currently granted by the gun.
func (g *Gun) BulletParams() BulletParams {
	p := DefaultBulletParams()
	p.Speed = float64(g.Attr.Get(Bullets(BulletSpeed)))
	p.Power = float64(g.Attr.Get(Bullets(BulletPower)))
	p.MaxBounces = int(g.Attr.GetUint(Bullets(BulletMaxBounces)))
	p.Lifetime = float64(g.Attr.Get(Bullets(BulletLifetime)))
	p.Faction = g.Faction
	return p
}

// fanOffset spreads count shots evenly across fan radians, centred on the aim.
func fanOffset(count int, fan float64, i int) float64 {
	if count <= 1 {
		return 0
	}
	return -fan/2 + fan*float64(i)/float64(count-1)
}
