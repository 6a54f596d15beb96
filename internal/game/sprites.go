package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spritePixel is the screen size of one pattern cell.
const spritePixel = 4

// Entity artwork as text patterns, authored facing up. '.' is
// transparent; digits index the palette.
var tankPattern = []string{
	"...11..11....",
	"...11..11....",
	"...111111....",
	"..111333111..",
	".11133333111.",
	".11223332211.",
	".11223332211.",
	".11233332211.",
	".11233332211.",
	".11223332211.",
	".11133333111.",
	"..111333111..",
	".11133333111.",
	"..111333111..",
}

var playerPalette = map[byte]color.RGBA{
	'1': {R: 38, G: 142, B: 73, A: 255},
	'2': {R: 54, G: 168, B: 88, A: 255},
	'3': {R: 92, G: 196, B: 118, A: 255},
}

var enemyPalette = map[byte]color.RGBA{
	'1': {R: 150, G: 62, B: 64, A: 255},
	'2': {R: 184, G: 90, B: 70, A: 255},
	'3': {R: 214, G: 132, B: 92, A: 255},
}

var bulletPattern = []string{
	"..1..",
	".111.",
	"11111",
	".111.",
	"..1..",
}

var bulletPalette = map[byte]color.RGBA{
	'1': {R: 240, G: 222, B: 120, A: 255},
}

var obstaclePattern = []string{
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
	strings.Repeat("1", 25),
}

var obstaclePalette = map[byte]color.RGBA{
	'1': {R: 94, G: 84, B: 142, A: 255},
}

// rotateCW returns the pattern turned a quarter clockwise, so one
// authored orientation serves all four facings.
func rotateCW(rows []string) []string {
	if len(rows) == 0 {
		return nil
	}
	h := len(rows)
	w := len(rows[0])
	out := make([]string, w)
	for x := 0; x < w; x++ {
		var sb strings.Builder
		for y := h - 1; y >= 0; y-- {
			sb.WriteByte(rows[y][x])
		}
		out[x] = sb.String()
	}
	return out
}

// facingPatterns derives all four orientations from the up-facing art.
func facingPatterns(up []string) map[Facing][]string {
	right := rotateCW(up)
	down := rotateCW(right)
	left := rotateCW(down)
	return map[Facing][]string{
		FacingUp:    up,
		FacingRight: right,
		FacingDown:  down,
		FacingLeft:  left,
	}
}

// patternSize returns the rendered pixel size of a pattern.
func patternSize(rows []string) (w, h int) {
	if len(rows) == 0 {
		return 0, 0
	}
	return len(rows[0]) * spritePixel, len(rows) * spritePixel
}

// renderPattern rasterizes a pattern into a fresh image, one filled
// square per palette cell.
func renderPattern(rows []string, palette map[byte]color.RGBA) *ebiten.Image {
	w, h := patternSize(rows)
	img := ebiten.NewImage(w, h)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			clr, ok := palette[row[x]]
			if !ok {
				continue
			}
			vector.FillRect(img,
				float32(x*spritePixel), float32(y*spritePixel),
				spritePixel, spritePixel, clr, false)
		}
	}
	return img
}

// spriteSet holds the prebuilt entity images.
type spriteSet struct {
	player   map[Facing]*ebiten.Image
	enemy    map[Facing]*ebiten.Image
	bullet   map[Facing]*ebiten.Image
	obstacle *ebiten.Image
}

func newSpriteSet() *spriteSet {
	s := &spriteSet{
		player:   make(map[Facing]*ebiten.Image),
		enemy:    make(map[Facing]*ebiten.Image),
		bullet:   make(map[Facing]*ebiten.Image),
		obstacle: renderPattern(obstaclePattern, obstaclePalette),
	}
	for f, rows := range facingPatterns(tankPattern) {
		s.player[f] = renderPattern(rows, playerPalette)
		s.enemy[f] = renderPattern(rows, enemyPalette)
	}
	for f, rows := range facingPatterns(bulletPattern) {
		s.bullet[f] = renderPattern(rows, bulletPalette)
	}
	return s
}
