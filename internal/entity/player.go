// Package entity holds the gameplay actors whose stats are driven by the
// attribute engine. Actors are plain state machines advanced by Update; the
// host supplies positions, input and collision events.
package entity

import (
	"math"

	"cozy-spring/internal/attribute"
	"cozy-spring/internal/core"
	"cozy-spring/internal/logger"
)

// Faction decides which targets a bullet may damage.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Target is anything a bullet can hit.
type Target interface {
	Faction() Faction
	Hit(amount int) bool
}

// PlayerAttribute keys the player's attribute set.
type PlayerAttribute uint8

const (
	PlayerMaxHealth PlayerAttribute = iota
	PlayerSpeed
)

// PlayerDamageCooldown is the invulnerability window after a hit, in seconds.
const PlayerDamageCooldown = 0.5

// HeartState is the fill level of one HUD heart container.
type HeartState uint8

const (
	HeartEmpty HeartState = iota
	HeartHalf
	HeartFull
)

func (h HeartState) String() string {
	switch h {
	case HeartFull:
		return "full"
	case HeartHalf:
		return "half"
	default:
		return "empty"
	}
}

// Player is the controllable character.
type Player struct {
	Attr *attribute.Set[PlayerAttribute]
	Pos  core.Vec2
	Gun  *Gun

	health   int
	cooldown *core.Timer
}

// NewPlayer returns a player at full health.
func NewPlayer(pos core.Vec2) *Player {
	attr := attribute.New[PlayerAttribute]().
		SetBase(PlayerMaxHealth, 20).
		SetBase(PlayerSpeed, 150)
	return &Player{
		Attr:     attr,
		Pos:      pos,
		health:   int(attr.GetInt(PlayerMaxHealth)),
		cooldown: core.NewTimer(PlayerDamageCooldown),
	}
}

// Faction implements Target.
func (p *Player) Faction() Faction { return FactionPlayer }

// Health returns the current health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the effective maximum health.
func (p *Player) MaxHealth() int { return int(p.Attr.GetInt(PlayerMaxHealth)) }

// Dead reports whether health has run out.
func (p *Player) Dead() bool { return p.health <= 0 }

// Invulnerable reports whether the damage cooldown is running.
func (p *Player) Invulnerable() bool { return !p.cooldown.Stopped() }

// Hit subtracts amount from health; negative amounts heal. Hits during the
// damage cooldown are ignored. Health never exceeds MaxHealth.
func (p *Player) Hit(amount int) bool {
	if p.Invulnerable() {
		logger.Debug("player on damage cooldown", "amount", amount)
		return false
	}
	p.health = min(p.health-amount, p.MaxHealth())
	p.cooldown.Start()
	if p.Dead() {
		logger.Info("player died")
	}
	return true
}

// Update advances timers and the held gun.
func (p *Player) Update(dt float64) {
	p.cooldown.Advance(dt)
	if p.Gun != nil {
		p.Gun.Update(dt)
	}
}

// Velocity converts a movement input into a velocity at the player's speed.
func (p *Player) Velocity(input core.Vec2) core.Vec2 {
	return input.Normalized().Scale(float64(p.Attr.Get(PlayerSpeed)))
}

// Aim points the held gun at target.
func (p *Player) Aim(target core.Vec2) {
	if p.Gun != nil {
		p.Gun.Aim(p.Pos, target)
	}
}

// HeartContainers is the number of HUD hearts; each holds two health.
func (p *Player) HeartContainers() int {
	return int(math.Ceil(float64(p.Attr.Get(PlayerMaxHealth)) / 2))
}

// Hearts returns the fill state of every heart container.
func (p *Player) Hearts() []HeartState {
	hearts := make([]HeartState, p.HeartContainers())
	for i := range hearts {
		switch {
		case p.health >= 2*i+2:
			hearts[i] = HeartFull
		case p.health == 2*i+1:
			hearts[i] = HeartHalf
		}
	}
	return hearts
}
