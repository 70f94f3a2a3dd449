package render

import (
	"image"
	"image/color"

	"cozy-spring/internal/core"
)

// Palette indices written by the canvases.
const (
	PaletteEmpty uint8 = iota
	PaletteDirt
	PaletteGrass
	PaletteTallGrass
	PaletteWall
	PaletteTree
)

// DefaultPalette colours the palette indices above.
var DefaultPalette = []color.RGBA{
	PaletteEmpty:     {R: 0, G: 0, B: 0, A: 0},
	PaletteDirt:      {R: 122, G: 92, B: 62, A: 255},
	PaletteGrass:     {R: 86, G: 150, B: 64, A: 255},
	PaletteTallGrass: {R: 52, G: 112, B: 44, A: 255},
	PaletteWall:      {R: 28, G: 60, B: 34, A: 255},
	PaletteTree:      {R: 18, G: 96, B: 40, A: 255},
}

type terrainKey struct {
	set, terrain int
}

// Canvas is a room.TileSurface that records painted tiles as palette
// indices. Atlas coordinates and terrains without a mapping paint nothing.
type Canvas struct {
	cells   *core.Grid[uint8]
	atlas   map[core.Point]uint8
	terrain map[terrainKey]uint8

	Clears       int
	CellCalls    int
	TerrainCalls int
}

// NewCanvas allocates an empty w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		cells:   core.NewGrid[uint8](w, h),
		atlas:   map[core.Point]uint8{},
		terrain: map[terrainKey]uint8{},
	}
}

// NewFloorCanvas maps the floor layer's default atlas and terrain.
func NewFloorCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.MapAtlas(core.Pt(0, 0), PaletteGrass)
	c.MapAtlas(core.Pt(1, 0), PaletteTallGrass)
	c.MapTerrain(0, 0, PaletteDirt)
	return c
}

// NewWallsCanvas maps the walls layer's default atlas and terrain. Clear
// cells stay empty so the floor shows through.
func NewWallsCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.MapAtlas(core.Pt(1, 1), PaletteTree)
	c.MapTerrain(0, 0, PaletteWall)
	return c
}

// MapAtlas paints atlas tiles with index.
func (c *Canvas) MapAtlas(atlas core.Point, index uint8) { c.atlas[atlas] = index }

// MapTerrain paints the terrain of set with index.
func (c *Canvas) MapTerrain(set, terrain int, index uint8) {
	c.terrain[terrainKey{set, terrain}] = index
}

// Clear implements room.TileSurface.
func (c *Canvas) Clear() {
	c.Clears++
	c.cells.Fill(PaletteEmpty)
}

// SetCell implements room.TileSurface.
func (c *Canvas) SetCell(p core.Point, _ int, atlas core.Point) {
	c.CellCalls++
	c.cells.Set(p, c.atlas[atlas])
}

// SetCellsTerrainConnect implements room.TileSurface.
func (c *Canvas) SetCellsTerrainConnect(cells []core.Point, set, terrain int) {
	c.TerrainCalls++
	index := c.terrain[terrainKey{set, terrain}]
	for _, p := range cells {
		c.cells.Set(p, index)
	}
}

// Cells returns the palette buffer.
func (c *Canvas) Cells() *core.Grid[uint8] { return c.cells }

// Composite overlays the non-empty cells of top onto base.
func Composite(base, top *Canvas) *core.Grid[uint8] {
	out := core.NewGrid[uint8](base.cells.Width(), base.cells.Height())
	copy(out.Cells(), base.cells.Cells())
	for p, v := range top.cells.All() {
		if v != PaletteEmpty {
			out.Set(p, v)
		}
	}
	return out
}

// RGBA converts a palette buffer into packed RGBA pixels.
func RGBA(cells *core.Grid[uint8], palette []color.RGBA) []byte {
	buf := make([]byte, 4*cells.Len())
	fillPaletteRGBA(buf, cells.Cells(), palette)
	return buf
}

// Image renders a palette buffer as an RGBA image, each cell scale pixels
// wide.
func Image(cells *core.Grid[uint8], palette []color.RGBA, scale int) *image.RGBA {
	scale = max(scale, 1)
	w, h := cells.Width(), cells.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	copy(img.Pix, scaleRGBA(RGBA(cells, palette), w, h, scale))
	return img
}
