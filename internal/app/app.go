//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cozy-spring/internal/config"
	"cozy-spring/internal/core"
	"cozy-spring/internal/dungeon"
	"cozy-spring/internal/render"
	"cozy-spring/internal/room"
	"cozy-spring/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in logical pixels.
const HUDWidth = 280

type layers struct {
	floor, walls *render.Canvas
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session  *Session
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	canvases map[dungeon.Coord]layers

	width, height int
	tile          int
	showHUD       bool
}

// New constructs a Game for cfg.
func New(cfg *config.Config) *Game {
	g := &Game{
		painter:  render.NewGridPainter(cfg.Dungeon.RoomWidth, cfg.Dungeon.RoomHeight),
		overlay:  ui.NewOverlay(),
		canvases: map[dungeon.Coord]layers{},
		width:    cfg.Dungeon.RoomWidth,
		height:   cfg.Dungeon.RoomHeight,
		tile:     cfg.Dungeon.TileSize,
		showHUD:  cfg.Viewer.HUD,
	}
	g.session = NewSession(cfg, g.roomLayers)
	g.hud = ui.NewHUD(HUDWidth, g.setParam)
	return g
}

// roomLayers gives every spawned room its own pair of canvases.
func (g *Game) roomLayers(c dungeon.Coord) []room.Option {
	l := layers{
		floor: render.NewFloorCanvas(g.width, g.height),
		walls: render.NewWallsCanvas(g.width, g.height),
	}
	g.canvases[c] = l
	return []room.Option{
		room.WithFloorLayer(room.NewFloorLayer(l.floor)),
		room.WithWallsLayer(room.NewWallsLayer(l.walls)),
	}
}

// Reset rebuilds the dungeon from seed.
func (g *Game) Reset(seed int64) {
	clear(g.canvases)
	g.session.Reset(seed)
}

func (g *Game) setParam(key, value string) error {
	probe := g.session.cfg.Room.Params
	if err := probe.Set(key, value); err != nil {
		return err
	}
	clear(g.canvases)
	return g.session.SetParam(key, value)
}

// Update handles per-frame input and advances the actors.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.overlay.Update()

	dt := 1 / float64(ebiten.TPS())
	g.session.Move(movement(), dt)

	mx, my := ebiten.CursorPosition()
	target := g.session.Anchor().Add(core.Vec2{X: float64(mx), Y: float64(my)})
	g.session.Aim(target, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && mx < g.viewWidth())
	g.session.Step(dt)

	if g.showHUD {
		g.hud.Update(g.viewWidth(), g.session.Parameters(), g.session.Status())
	}
	return nil
}

func movement() core.Vec2 {
	var v core.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y++
	}
	return v
}

// Draw renders the current room, its actors and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if l, ok := g.canvases[g.session.Current()]; ok {
		g.painter.Blit(screen, render.Composite(l.floor, l.walls), render.DefaultPalette, g.tile, 0, 0)
	}
	g.overlay.Draw(screen, g.session.Room(), g.tile, 0, 0)

	anchor := g.session.Anchor()
	world := g.session.World()
	for _, d := range world.Drops {
		g.drawActor(screen, anchor, d.Pos, 8, color.RGBA{R: 240, G: 90, B: 120, A: 255})
	}
	for _, e := range world.Enemies {
		g.drawActor(screen, anchor, e.Pos, 14, color.RGBA{R: 200, G: 60, B: 40, A: 255})
	}
	for _, b := range world.Bullets {
		g.drawActor(screen, anchor, b.Pos, 4, color.RGBA{R: 250, G: 240, B: 180, A: 255})
	}
	player := g.session.Player()
	playerColor := color.RGBA{R: 90, G: 160, B: 255, A: 255}
	if player.Invulnerable() {
		playerColor.A = 140
	}
	g.drawActor(screen, anchor, player.Pos, 14, playerColor)

	if g.showHUD {
		g.hud.Draw(screen, g.viewWidth(), g.viewHeight())
	}
}

func (g *Game) drawActor(screen *ebiten.Image, anchor, pos core.Vec2, size float64, col color.RGBA) {
	local := pos.Sub(anchor)
	g.overlay.DrawPoint(screen, local.X, local.Y, size, col)
}

func (g *Game) viewWidth() int  { return g.width * g.tile }
func (g *Game) viewHeight() int { return g.height * g.tile }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.viewWidth()
	if g.showHUD {
		w += HUDWidth
	}
	return w, g.viewHeight()
}
