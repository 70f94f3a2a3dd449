package room

import (
	"testing"

	"cozy-spring/internal/core"
)

type paintCall struct {
	cell  core.Point
	atlas core.Point
}

type terrainCall struct {
	cells   []core.Point
	set     int
	terrain int
}

type recordingSurface struct {
	clears  int
	cells   []paintCall
	batches []terrainCall
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.cells = nil
	s.batches = nil
}

func (s *recordingSurface) SetCell(p core.Point, _ int, atlas core.Point) {
	s.cells = append(s.cells, paintCall{cell: p, atlas: atlas})
}

func (s *recordingSurface) SetCellsTerrainConnect(cells []core.Point, set, terrain int) {
	s.batches = append(s.batches, terrainCall{cells: cells, set: set, terrain: terrain})
}

func TestFloorLayerBatchesDirt(t *testing.T) {
	grid := core.NewGrid[FloorTile](3, 2)
	grid.Set(core.Pt(0, 0), FloorDirt)
	grid.Set(core.Pt(1, 0), FloorGrass)
	grid.Set(core.Pt(2, 0), FloorDirt)
	grid.Set(core.Pt(0, 1), FloorTallGrass)
	grid.Set(core.Pt(1, 1), FloorDirt)
	// (2,1) stays FloorNone and is not painted.

	surface := &recordingSurface{}
	layer := NewFloorLayer(surface)
	layer.DirtTerrainSet = 2
	layer.DirtTerrain = 3
	layer.SetTiles(grid)

	if surface.clears != 1 {
		t.Fatalf("expected one clear, got %d", surface.clears)
	}
	if len(surface.cells) != 2 {
		t.Fatalf("expected 2 single-cell paints, got %d", len(surface.cells))
	}
	if surface.cells[0].atlas != layer.GrassAtlas || surface.cells[1].atlas != layer.TallGrassAtlas {
		t.Fatalf("unexpected atlas coordinates: %+v", surface.cells)
	}
	if len(surface.batches) != 1 {
		t.Fatalf("expected one terrain batch, got %d", len(surface.batches))
	}
	b := surface.batches[0]
	if len(b.cells) != 3 || b.set != 2 || b.terrain != 3 {
		t.Fatalf("unexpected dirt batch: %+v", b)
	}
}

func TestWallsLayerBatchesWalls(t *testing.T) {
	surface := &recordingSurface{}
	r := New(10, 10, DefaultParams(), WithWallsLayer(NewWallsLayer(surface)))
	r.Generate(42, Layout{})

	walls, trees, clear := 0, 0, 0
	for _, tile := range r.Walls().Cells() {
		switch tile {
		case WallWall:
			walls++
		case WallLoneTree:
			trees++
		case WallClear:
			clear++
		}
	}
	if len(surface.batches) != 1 {
		t.Fatalf("expected exactly one wall batch, got %d", len(surface.batches))
	}
	if got := len(surface.batches[0].cells); got != walls {
		t.Fatalf("wall batch has %d cells, grid has %d walls", got, walls)
	}
	if len(surface.cells) != trees+clear {
		t.Fatalf("single-cell paints %d, want %d", len(surface.cells), trees+clear)
	}
}

func TestLayersRepaintOnRegenerate(t *testing.T) {
	floor := &recordingSurface{}
	walls := &recordingSurface{}
	r := New(8, 8, DefaultParams(),
		WithFloorLayer(NewFloorLayer(floor)),
		WithWallsLayer(NewWallsLayer(walls)))

	r.Generate(1, Layout{North: true})
	r.Generate(2, Layout{South: true})

	if floor.clears != 2 || walls.clears != 2 {
		t.Fatalf("clears floor=%d walls=%d, want 2 each", floor.clears, walls.clears)
	}
	painted := len(floor.cells)
	for _, b := range floor.batches {
		painted += len(b.cells)
	}
	if painted != 64 {
		t.Fatalf("floor painted %d cells, want 64", painted)
	}
}

func TestTileStrings(t *testing.T) {
	if FloorTallGrass.String() != "tall_grass" || WallLoneTree.String() != "lone_tree" {
		t.Fatalf("unexpected tile names")
	}
}
