package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Arena chrome palette.
var (
	colorBackground = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	colorField      = color.RGBA{R: 26, G: 30, B: 38, A: 255}
	colorGrid       = color.RGBA{R: 34, G: 40, B: 52, A: 255}
	colorBorder     = color.RGBA{R: 52, G: 56, B: 68, A: 255}
)

const gridStep = 32

// Draw renders one frame: field, terrain, tanks, shells, HUD, and the
// optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawField(screen)

	for _, o := range g.round.Obstacles() {
		g.drawSprite(screen, g.sprites.obstacle, o.Bounds())
	}
	if g.round.Player().Alive() {
		g.drawSprite(screen, g.sprites.player[g.round.Player().Facing()], g.round.Player().Bounds())
	}
	if g.round.Enemy().Alive() {
		g.drawSprite(screen, g.sprites.enemy[g.round.Enemy().Facing()], g.round.Enemy().Bounds())
	}
	for _, b := range g.round.Bullets() {
		g.drawSprite(screen, g.sprites.bullet[b.Facing()], b.Bounds())
	}

	g.drawHUD(screen)
	if g.showDebug {
		g.drawDebug(screen)
	}
}

// drawField paints the playfield panel, a faint grid, and the border.
func (g *Game) drawField(screen *ebiten.Image) {
	f := g.round.Field()
	vector.FillRect(screen,
		float32(f.Left), float32(f.Top), float32(f.W), float32(f.H),
		colorField, false)

	for x := f.Left + gridStep; x < f.Right(); x += gridStep {
		vector.StrokeLine(screen,
			float32(x), float32(f.Top), float32(x), float32(f.Bottom()),
			1, colorGrid, false)
	}
	for y := f.Top + gridStep; y < f.Bottom(); y += gridStep {
		vector.StrokeLine(screen,
			float32(f.Left), float32(y), float32(f.Right()), float32(y),
			1, colorGrid, false)
	}

	vector.StrokeRect(screen,
		float32(f.Left-6), float32(f.Top-6), float32(f.W+12), float32(f.H+12),
		6, colorBorder, false)
}

// drawSprite blits an image centered on the entity's box, so rotated
// art with swapped width and height still lines up.
func (g *Game) drawSprite(screen *ebiten.Image, img *ebiten.Image, box Box) {
	cx, cy := box.Center()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cx-w/2), float64(cy-h/2))
	screen.DrawImage(img, op)
}

// drawDebug prints the tick counters and entity tallies in the corner.
func (g *Game) drawDebug(screen *ebiten.Image) {
	f := g.round.Field()
	msg := fmt.Sprintf("tick=%d clock=%dms shells=%d outcome=%s",
		g.round.Tick(), g.round.NowMS(), len(g.round.Bullets()), g.round.Outcome())
	ebitenutil.DebugPrintAt(screen, msg, f.Left, 4)
	if ev, ok := g.round.Events().Last(EventDecision); ok {
		ebitenutil.DebugPrintAt(screen, ev.String(), f.Left, 18)
	}
}
