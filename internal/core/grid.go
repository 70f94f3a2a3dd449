package core

import "iter"

// Grid stores a 2D grid of cell values in row-major order. Coordinates wrap
// toroidally, so every position maps to some cell of a non-empty grid.
type Grid[T any] struct {
	w, h int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Negative sizes are
// treated as zero.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{w: w, h: h, data: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Size reports the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.w, H: g.h} }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Wrap applies toroidal wrapping to the provided position.
func (g *Grid[T]) Wrap(p Point) Point {
	if len(g.data) == 0 {
		return Point{}
	}
	p.X = (p.X%g.w + g.w) % g.w
	p.Y = (p.Y%g.h + g.h) % g.h
	return p
}

// Index returns the linear slice index for p after wrapping.
func (g *Grid[T]) Index(p Point) int {
	p = g.Wrap(p)
	return p.Y*g.w + p.X
}

// Pos converts a linear index back into a position.
func (g *Grid[T]) Pos(idx int) Point {
	if g.w == 0 {
		return Point{}
	}
	return Point{X: idx % g.w, Y: idx / g.w}
}

// Get returns the value at p. Empty grids yield the zero value.
func (g *Grid[T]) Get(p Point) T {
	if len(g.data) == 0 {
		var zero T
		return zero
	}
	return g.data[g.Index(p)]
}

// Ptr returns a pointer to the cell at p, or nil for an empty grid.
func (g *Grid[T]) Ptr(p Point) *T {
	if len(g.data) == 0 {
		return nil
	}
	return &g.data[g.Index(p)]
}

// Set stores v at p.
func (g *Grid[T]) Set(p Point, v T) {
	if ptr := g.Ptr(p); ptr != nil {
		*ptr = v
	}
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// All yields every (position, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(g.Pos(i), v) {
				return
			}
		}
	}
}
