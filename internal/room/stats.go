package room

import "fmt"

// Stats summarises the tile mix of one or more generated rooms.
type Stats struct {
	Rooms int
	Cells int

	Walls     int
	LoneTrees int
	Dirt      int
	Grass     int
	TallGrass int

	// Exits counts declared exits; BlockedExits those not reachable from
	// the centre.
	Exits        int
	BlockedExits int
}

// Merge adds o into s.
func (s *Stats) Merge(o Stats) {
	s.Rooms += o.Rooms
	s.Cells += o.Cells
	s.Walls += o.Walls
	s.LoneTrees += o.LoneTrees
	s.Dirt += o.Dirt
	s.Grass += o.Grass
	s.TallGrass += o.TallGrass
	s.Exits += o.Exits
	s.BlockedExits += o.BlockedExits
}

func (s Stats) fraction(n int) float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(n) / float64(s.Cells)
}

// WallFraction is the share of cells classified Wall.
func (s Stats) WallFraction() float64 { return s.fraction(s.Walls) }

// TreeFraction is the share of cells classified LoneTree.
func (s Stats) TreeFraction() float64 { return s.fraction(s.LoneTrees) }

// GrassFraction is the share of cells with grass or tall grass.
func (s Stats) GrassFraction() float64 { return s.fraction(s.Grass + s.TallGrass) }

func (s Stats) String() string {
	return fmt.Sprintf("rooms=%d walls=%.3f trees=%.3f grass=%.3f blocked=%d/%d",
		s.Rooms, s.WallFraction(), s.TreeFraction(), s.GrassFraction(), s.BlockedExits, s.Exits)
}

// Collect tallies the current grids of r.
func (r *Room) Collect() Stats {
	st := Stats{Rooms: 1, Cells: r.width * r.height}
	for _, t := range r.floor.Cells() {
		switch t {
		case FloorDirt:
			st.Dirt++
		case FloorGrass:
			st.Grass++
		case FloorTallGrass:
			st.TallGrass++
		}
	}
	for _, t := range r.walls.Cells() {
		switch t {
		case WallWall:
			st.Walls++
		case WallLoneTree:
			st.LoneTrees++
		}
	}
	for _, d := range r.layout.Exits() {
		st.Exits++
		if !r.ExitReachable(d) {
			st.BlockedExits++
		}
	}
	return st
}

// Evaluate generates a w×h room per seed and merges their stats.
func Evaluate(p Params, w, h int, seeds []uint32, layout Layout) Stats {
	var total Stats
	r := New(w, h, p)
	for _, seed := range seeds {
		r.Generate(seed, layout)
		total.Merge(r.Collect())
	}
	return total
}
