package entity

import "cozy-spring/internal/core"

// Drop is a pickup left behind by an enemy.
type Drop struct {
	Pos          core.Vec2
	GainedHealth int

	taken bool
}

// Taken reports whether the drop has been consumed.
func (d *Drop) Taken() bool { return d.taken }

// PickUp heals p by GainedHealth. The drop is consumed only when the heal
// lands, so it stays on the floor while p is on damage cooldown.
func (d *Drop) PickUp(p *Player) bool {
	if d.taken || !p.Hit(-d.GainedHealth) {
		return false
	}
	d.taken = true
	return true
}
