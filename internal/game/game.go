package game

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"tankarena/internal/config"
)

// tickDT is the fixed simulation step. Ebiten calls Update at 60 TPS.
const tickDT = 1.0 / 60

// Game is the windowed shell around a Round: key polling, fixed-step
// advance, rendering, and restart handling.
type Game struct {
	cfg   config.Config
	log   *zap.SugaredLogger
	round *Round

	sprites   *spriteSet
	showDebug bool
	prevKeys  map[ebiten.Key]bool
}

// controlKeys are the edge-triggered keys the shell watches.
var controlKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyC, ebiten.KeyF3}

// New builds the windowed game with a fresh round. A nil logger is
// replaced with a no-op one.
func New(cfg config.Config, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Game{
		cfg:      cfg,
		log:      log,
		round:    NewRound(cfg, time.Now().UnixNano(), log),
		sprites:  newSpriteSet(),
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Update advances exactly one simulation tick per frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleControlKeys()

	in := FrameInput{Move: readMoveIntent(), Fire: readFireHeld()}
	g.round.Advance(in, tickDT)
	return nil
}

// handleControlKeys reacts to key presses, not holds: R restarts a
// finished round, C copies the round report, F3 toggles the overlay.
func (g *Game) handleControlKeys() {
	current := make(map[ebiten.Key]bool, len(controlKeys))
	for _, k := range controlKeys {
		current[k] = ebiten.IsKeyPressed(k)
	}

	if current[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] && g.round.Outcome() != OutcomePlaying {
		g.round = NewRound(g.cfg, time.Now().UnixNano(), g.log)
	}
	if current[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		if err := clipboard.WriteAll(RoundReport(g.round)); err != nil {
			g.log.Warnw("clipboard copy failed", "err", err)
		} else {
			g.log.Infow("round report copied", "tick", g.round.Tick())
		}
	}
	if current[ebiten.KeyF3] && !g.prevKeys[ebiten.KeyF3] {
		g.showDebug = !g.showDebug
	}

	g.prevKeys = current
}

// Layout fixes the logical screen to the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.World.Width, g.cfg.World.Height
}
