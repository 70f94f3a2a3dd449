package core

import "testing"

func TestGridWrapFullPeriod(t *testing.T) {
	g := NewGrid[int](7, 5)
	p := Pt(3, 2)
	g.Set(p, 42)

	if got := g.Get(p.Add(Pt(g.Width(), 0))); got != 42 {
		t.Fatalf("expected wrapped read to return 42, got %d", got)
	}
	if got := g.Get(p.Add(Pt(0, -g.Height()))); got != 42 {
		t.Fatalf("expected negative wrap to return 42, got %d", got)
	}
	if got := g.Get(p.Add(Pt(-3*g.Width(), 4*g.Height()))); got != 42 {
		t.Fatalf("expected multi-period wrap to return 42, got %d", got)
	}
}

func TestGridWrapNegativeExactMultiple(t *testing.T) {
	g := NewGrid[int](4, 4)
	if got := g.Wrap(Pt(-4, -8)); got != (Point{}) {
		t.Fatalf("expected (-4,-8) to wrap to origin, got %+v", got)
	}
	if got := g.Wrap(Pt(-1, 5)); got != Pt(3, 1) {
		t.Fatalf("expected (-1,5) to wrap to (3,1), got %+v", got)
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid[uint8](6, 3)
	for i := 0; i < g.Len(); i++ {
		if got := g.Index(g.Pos(i)); got != i {
			t.Fatalf("index %d round-tripped to %d", i, got)
		}
	}
}

func TestGridPtrMutates(t *testing.T) {
	g := NewGrid[float32](2, 2)
	*g.Ptr(Pt(1, 1)) += 1.5
	if got := g.Cells()[3]; got != 1.5 {
		t.Fatalf("expected cell 3 to hold 1.5, got %f", got)
	}
}

func TestGridAllRowMajorAndRestartable(t *testing.T) {
	g := NewGrid[int](3, 2)
	for i := range g.Cells() {
		g.Cells()[i] = i
	}

	for pass := 0; pass < 2; pass++ {
		n := 0
		for p, v := range g.All() {
			if v != n {
				t.Fatalf("pass %d: expected value %d at step %d, got %d", pass, n, n, v)
			}
			if want := Pt(n%3, n/3); p != want {
				t.Fatalf("pass %d: expected position %+v, got %+v", pass, want, p)
			}
			n++
		}
		if n != g.Len() {
			t.Fatalf("pass %d: iterated %d cells, expected %d", pass, n, g.Len())
		}
	}
}

func TestGridAllStopsEarly(t *testing.T) {
	g := NewGrid[int](4, 4)
	n := 0
	for range g.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected iteration to stop after 3 cells, got %d", n)
	}
}

func TestEmptyGridIsTotal(t *testing.T) {
	g := NewGrid[int](0, -3)
	if g.Len() != 0 || g.Height() != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.Width(), g.Height())
	}
	g.Set(Pt(5, 5), 9)
	if got := g.Get(Pt(5, 5)); got != 0 {
		t.Fatalf("expected zero value from empty grid, got %d", got)
	}
	if g.Ptr(Pt(0, 0)) != nil {
		t.Fatal("expected nil pointer from empty grid")
	}
	for range g.All() {
		t.Fatal("empty grid must not yield cells")
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid[rune](3, 3)
	g.Fill('#')
	for p, v := range g.All() {
		if v != '#' {
			t.Fatalf("cell %+v not filled: %q", p, v)
		}
	}
}
