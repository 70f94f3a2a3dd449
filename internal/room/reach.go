package room

import "cozy-spring/internal/core"

// Walkable reports whether an actor can stand on a cell holding t.
func Walkable(t WallTile) bool { return t == WallClear }

// Reachable flood-fills the walkable cells 4-connected to from. Coordinates
// do not wrap. A non-walkable or out-of-room start yields an empty mask.
func (r *Room) Reachable(from core.Point) *core.Grid[bool] {
	seen := core.NewGrid[bool](r.width, r.height)
	if !r.inBounds(from) || !Walkable(r.walls.Get(from)) {
		return seen
	}

	offsets := [...]core.Point{core.Pt(1, 0), core.Pt(-1, 0), core.Pt(0, 1), core.Pt(0, -1)}
	queue := []core.Point{from}
	seen.Set(from, true)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, off := range offsets {
			n := p.Add(off)
			if !r.inBounds(n) || seen.Get(n) || !Walkable(r.walls.Get(n)) {
				continue
			}
			seen.Set(n, true)
			queue = append(queue, n)
		}
	}
	return seen
}

// ExitReachable reports whether some opening cell of side d is walkable from
// the room centre.
func (r *Room) ExitReachable(d Direction) bool {
	if r.state != Generated {
		return false
	}
	mask := r.Reachable(r.Center())
	for _, p := range r.Opening(d) {
		if mask.Get(p) {
			return true
		}
	}
	return false
}

func (r *Room) inBounds(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < r.width && p.Y < r.height
}
