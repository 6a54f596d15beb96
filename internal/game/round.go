package game

import (
	"math/rand"

	"go.uber.org/zap"

	"tankarena/internal/config"
)

// RoundOutcome is the terminal state of a round from the player's
// point of view.
type RoundOutcome int

const (
	OutcomePlaying RoundOutcome = iota
	OutcomeVictory              // enemy destroyed
	OutcomeDefeat               // player destroyed
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// FrameInput is the player intent for one tick, components in
// {-1, 0, 1} per axis, diagonals allowed.
type FrameInput struct {
	Move Vec2
	Fire bool
}

// Round owns one complete playthrough: the field, both tanks, the
// opponent controller, the obstacles, and every live shell. It holds
// no wall-clock state; time only advances through Advance.
type Round struct {
	field     Box
	player    *Tank
	enemy     *Tank
	ctrl      *EnemyController
	autoPilot *EnemyController // optional player-side driver for headless runs
	obstacles []*Obstacle
	bullets   []*Bullet

	tick    int
	clockMS float64
	outcome RoundOutcome

	events *EventLog
	log    *zap.SugaredLogger
}

// NewRound builds a fresh round from cfg. The seed feeds obstacle
// placement and the opponent controller; equal seeds with equal input
// replay identically. A nil logger is replaced with a no-op one.
func NewRound(cfg config.Config, seed int64, log *zap.SugaredLogger) *Round {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only

	field := Box{
		Left: cfg.World.FieldInset,
		Top:  cfg.World.FieldInset,
		W:    cfg.World.Width - 2*cfg.World.FieldInset,
		H:    cfg.World.Height - 2*cfg.World.FieldInset,
	}
	playerSpawn := Vec2{
		X: float64(field.Left + cfg.World.SpawnInset),
		Y: float64(field.Bottom() - cfg.World.SpawnInset),
	}
	enemySpawn := Vec2{
		X: float64(field.Right() - cfg.World.SpawnInset),
		Y: float64(field.Top + cfg.World.SpawnInset),
	}

	r := &Round{
		field:  field,
		player: NewTank(tankParams("player", cfg.Player, cfg.Bullet), playerSpawn),
		enemy:  NewTank(tankParams("enemy", cfg.Enemy, cfg.Bullet), enemySpawn),
		events: NewEventLog(0),
		log:    log,
	}
	r.obstacles = PlaceObstacles(rng, field, []Vec2{playerSpawn, enemySpawn}, obstacleParams(cfg.Obstacles))
	r.ctrl = NewEnemyController(r.enemy, controllerParams(cfg.Controller), rng)
	r.ctrl.attachEvents(r.events)

	log.Infow("round start",
		"seed", seed,
		"field", field,
		"obstacles", len(r.obstacles),
		"player", r.player.id,
		"enemy", r.enemy.id,
	)
	return r
}

func tankParams(name string, u config.Unit, b config.Bullet) TankParams {
	return TankParams{
		Name:        name,
		W:           u.Width,
		H:           u.Height,
		Speed:       u.Speed,
		Health:      u.Health,
		ReloadMS:    u.ReloadMS,
		BulletSpeed: b.Speed,
		BulletW:     b.Width,
		BulletH:     b.Height,
	}
}

func controllerParams(c config.Controller) ControllerParams {
	return ControllerParams{
		DecisionMinSec: c.DecisionMinSec,
		DecisionMaxSec: c.DecisionMaxSec,
		SeekProb:       c.SeekProb,
		RandomFireProb: c.RandomFireProb,
		AlignTolerance: c.AlignTolerance,
	}
}

func obstacleParams(o config.Obstacles) ObstacleParams {
	return ObstacleParams{
		Count:       o.Count,
		W:           o.Width,
		H:           o.Height,
		Inset:       o.Inset,
		MinSpacing:  o.MinSpacing,
		SafeRadius:  o.SafeRadius,
		MaxAttempts: o.MaxAttempts,
	}
}

// Advance runs one fixed-order tick: player acts, opponent acts,
// shells fly, strikes resolve. Once the outcome is decided the round
// is inert.
func (r *Round) Advance(in FrameInput, dt float64) {
	if r.outcome != OutcomePlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}
	r.tick++
	r.clockMS += dt * 1000
	now := r.NowMS()

	// 1. Player slot.
	if r.autoPilot != nil {
		r.autoPilot.Update(dt, r.enemy, r.field, r.blockersFor(r.player), &r.bullets, now, r.tick)
	} else {
		r.player.Move(in.Move, dt, r.field, r.blockersFor(r.player))
		if in.Fire {
			if b := r.player.Shoot(&r.bullets, now); b != nil {
				r.events.Add(r.tick, r.player.name, EventShot, b.facing.String())
			}
		}
	}

	// 2. Opponent slot.
	if r.enemy.Alive() {
		r.ctrl.Update(dt, r.livePlayer(), r.field, r.blockersFor(r.enemy), &r.bullets, now, r.tick)
	}

	// 3. Shells advance; the out-of-field ones fall away.
	live := r.bullets[:0]
	for _, b := range r.bullets {
		b.Update(dt, r.field)
		if !b.Expired() {
			live = append(live, b)
		}
	}
	r.bullets = live

	// 4. Strike resolution.
	r.resolveHits()
}

// livePlayer returns the player tank while it is alive, else nil so
// the controller stops aiming at a wreck.
func (r *Round) livePlayer() *Tank {
	if r.player.Alive() {
		return r.player
	}
	return nil
}

// blockersFor assembles a mover's view of the world for this tick:
// the other tank while it lives, then every obstacle.
func (r *Round) blockersFor(mover *Tank) []Collidable {
	out := make([]Collidable, 0, len(r.obstacles)+1)
	other := r.enemy
	if mover == r.enemy {
		other = r.player
	}
	if other.Alive() {
		out = append(out, other)
	}
	for _, o := range r.obstacles {
		out = append(out, o)
	}
	return out
}

// resolveHits culls shells against terrain first, then applies unit
// damage, skipping each shell's own firer.
func (r *Round) resolveHits() {
	targets := make([]Collidable, 0, len(r.obstacles)+2)
	for _, o := range r.obstacles {
		targets = append(targets, o)
	}
	targets = append(targets, r.player, r.enemy)

	live := r.bullets[:0]
	for _, b := range r.bullets {
		if r.strike(b, targets) {
			continue
		}
		live = append(live, b)
	}
	r.bullets = live
}

// strike tests one shell against the targets and reports whether it
// was consumed.
func (r *Round) strike(b *Bullet, targets []Collidable) bool {
	for _, c := range targets {
		if !b.box.Intersects(c.Bounds()) {
			continue
		}
		if !c.IsUnit() {
			r.events.Add(r.tick, "--", EventObstacleHit, "")
			return true
		}
		tank := c.(*Tank)
		if !tank.Alive() || tank.id == b.ownerID {
			continue
		}
		destroyed := tank.TakeHit()
		r.events.Add(r.tick, tank.name, EventHit, "")
		r.log.Debugw("shell hit", "tank", tank.name, "health", tank.health)
		if destroyed {
			r.events.Add(r.tick, tank.name, EventDestroyed, "")
			r.finish(tank)
		}
		return true
	}
	return false
}

func (r *Round) finish(destroyed *Tank) {
	if r.outcome != OutcomePlaying {
		return
	}
	if destroyed == r.player {
		r.outcome = OutcomeDefeat
	} else {
		r.outcome = OutcomeVictory
	}
	r.events.Add(r.tick, "--", EventOutcome, r.outcome.String())
	r.log.Infow("round over", "outcome", r.outcome.String(), "tick", r.tick)
}

// NowMS is the round clock in whole milliseconds. It starts at zero
// and only moves through Advance.
func (r *Round) NowMS() int64 { return int64(r.clockMS) }

func (r *Round) Tick() int              { return r.tick }
func (r *Round) Outcome() RoundOutcome  { return r.outcome }
func (r *Round) Field() Box             { return r.field }
func (r *Round) Player() *Tank          { return r.player }
func (r *Round) Enemy() *Tank           { return r.enemy }
func (r *Round) Obstacles() []*Obstacle { return r.obstacles }
func (r *Round) Bullets() []*Bullet     { return r.bullets }
func (r *Round) Events() *EventLog      { return r.events }
