package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	colorHUD    = color.RGBA{R: 218, G: 218, B: 218, A: 255}
	colorReload = color.RGBA{R: 240, G: 222, B: 120, A: 255}
)

// hudFace is the bitmap face for all HUD text.
var hudFace font.Face = basicfont.Face7x13

// drawHUD renders the health readouts below the field and, once the
// round is decided, the outcome banner above it.
func (g *Game) drawHUD(screen *ebiten.Image) {
	f := g.round.Field()
	baseY := f.Bottom() + 24

	playerLine := fmt.Sprintf("Player HP: %d", clampZero(g.round.Player().Health()))
	enemyLine := fmt.Sprintf("Enemy HP: %d", clampZero(g.round.Enemy().Health()))
	text.Draw(screen, playerLine, hudFace, f.Left, baseY, colorHUD)
	text.Draw(screen, enemyLine, hudFace, f.Left, baseY+16, colorHUD)

	if g.round.Player().Alive() && !g.round.Player().CanFire(g.round.NowMS()) {
		text.Draw(screen, "reloading", hudFace, f.Right()-9*7, baseY, colorReload)
	}

	switch g.round.Outcome() {
	case OutcomeVictory:
		g.drawBanner(screen, "Victory! Press R to restart, ESC to quit")
	case OutcomeDefeat:
		g.drawBanner(screen, "Defeat... Press R to restart, ESC to quit")
	}
}

// drawBanner centers a message in the margin above the playfield.
func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	bounds, _ := font.BoundString(hudFace, msg)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	x := (g.cfg.World.Width - w) / 2
	text.Draw(screen, msg, hudFace, x, 30, colorHUD)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
