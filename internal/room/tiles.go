package room

import (
	"fmt"

	"cozy-spring/internal/core"
)

// FloorTile classifies the ground of a cell.
type FloorTile uint8

const (
	FloorNone FloorTile = iota
	FloorDirt
	FloorGrass
	FloorTallGrass
)

func (t FloorTile) String() string {
	switch t {
	case FloorNone:
		return "none"
	case FloorDirt:
		return "dirt"
	case FloorGrass:
		return "grass"
	case FloorTallGrass:
		return "tall_grass"
	default:
		return fmt.Sprintf("floor(%d)", uint8(t))
	}
}

// WallTile classifies what stands on a cell.
type WallTile uint8

const (
	WallClear WallTile = iota
	WallWall
	WallLoneTree
)

func (t WallTile) String() string {
	switch t {
	case WallClear:
		return "clear"
	case WallWall:
		return "wall"
	case WallLoneTree:
		return "lone_tree"
	default:
		return fmt.Sprintf("wall(%d)", uint8(t))
	}
}

// TileSurface is the paint target of a tile layer. Sparse categories are
// painted cell by cell; area categories are painted in one connected-terrain
// call so the renderer can auto-match edges.
type TileSurface interface {
	Clear()
	SetCell(p core.Point, source int, atlas core.Point)
	SetCellsTerrainConnect(cells []core.Point, terrainSet, terrain int)
}

// FloorLayer paints floor grids onto a TileSurface.
type FloorLayer struct {
	Surface TileSurface

	Source         int
	DirtTerrainSet int
	DirtTerrain    int
	GrassAtlas     core.Point
	TallGrassAtlas core.Point
}

// NewFloorLayer returns a layer with the default atlas coordinates.
func NewFloorLayer(s TileSurface) *FloorLayer {
	return &FloorLayer{
		Surface:        s,
		GrassAtlas:     core.Pt(0, 0),
		TallGrassAtlas: core.Pt(1, 0),
	}
}

// SetTiles clears the surface and paints grid. Dirt cells are batched into a
// single terrain call.
func (l *FloorLayer) SetTiles(grid *core.Grid[FloorTile]) {
	l.Surface.Clear()

	var dirt []core.Point
	for p, tile := range grid.All() {
		switch tile {
		case FloorGrass:
			l.Surface.SetCell(p, l.Source, l.GrassAtlas)
		case FloorTallGrass:
			l.Surface.SetCell(p, l.Source, l.TallGrassAtlas)
		case FloorDirt:
			dirt = append(dirt, p)
		}
	}
	if len(dirt) > 0 {
		l.Surface.SetCellsTerrainConnect(dirt, l.DirtTerrainSet, l.DirtTerrain)
	}
}

// WallsLayer paints wall grids onto a TileSurface.
type WallsLayer struct {
	Surface TileSurface

	Source         int
	WallTerrainSet int
	WallTerrain    int
	ClearAtlas     core.Point
	LoneTreeAtlas  core.Point
}

// NewWallsLayer returns a layer with the default atlas coordinates.
func NewWallsLayer(s TileSurface) *WallsLayer {
	return &WallsLayer{
		Surface:       s,
		ClearAtlas:    core.Pt(0, 1),
		LoneTreeAtlas: core.Pt(1, 1),
	}
}

// SetTiles clears the surface and paints grid. Wall cells are batched into a
// single terrain call.
func (l *WallsLayer) SetTiles(grid *core.Grid[WallTile]) {
	l.Surface.Clear()

	var walls []core.Point
	for p, tile := range grid.All() {
		switch tile {
		case WallClear:
			l.Surface.SetCell(p, l.Source, l.ClearAtlas)
		case WallLoneTree:
			l.Surface.SetCell(p, l.Source, l.LoneTreeAtlas)
		case WallWall:
			walls = append(walls, p)
		}
	}
	if len(walls) > 0 {
		l.Surface.SetCellsTerrainConnect(walls, l.WallTerrainSet, l.WallTerrain)
	}
}
