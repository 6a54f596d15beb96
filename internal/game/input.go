package game

import "github.com/hajimehoshi/ebiten/v2"

// readMoveIntent polls the movement keys into a direction with
// components in {-1, 0, 1}. Opposed keys cancel out.
func readMoveIntent() Vec2 {
	var v Vec2
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

// readFireHeld reports whether a fire key is down. Fire is level
// triggered; the reload clock does the rate limiting.
func readFireHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyControlLeft)
}
