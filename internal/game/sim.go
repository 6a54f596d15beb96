package game

import (
	"math/rand"

	"go.uber.org/zap"

	"tankarena/internal/config"
)

// Sim drives a Round without a window or wall clock, for tests and the
// batch report tool. Options are applied in kind order regardless of
// argument order: infrastructure first, then world shaping, then
// drivers, so an explicit obstacle always lands after placement and a
// driver always sees the finished world.
type Sim struct {
	Round *Round

	cfg      config.Config
	seed     int64
	log      *zap.SugaredLogger
	eventCap int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, logging
	simOptWorld                       // obstacle overrides
	simOptDriver                      // extra drivers
)

// SimOption configures a Sim at construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithConfig replaces the whole tuning. The obstacle count carries
// over as given; combine with WithRandomObstacles to change it.
func WithConfig(cfg config.Config) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.cfg = cfg }}
}

// WithSeed fixes the seed for placement and the opponent controller.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.seed = seed }}
}

// WithLogger routes round logging somewhere visible.
func WithLogger(log *zap.SugaredLogger) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.log = log }}
}

// WithEventCap widens (or narrows) the event log retention.
func WithEventCap(n int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.eventCap = n }}
}

// WithRandomObstacles sets the random placement count. The harness
// default is a clean field.
func WithRandomObstacles(n int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.cfg.Obstacles.Count = n }}
}

// WithObstacleAt drops an obstacle of the configured size centered at
// (cx, cy), after random placement. Repeatable.
func WithObstacleAt(cx, cy int) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Round.obstacles = append(s.Round.obstacles,
			NewObstacle(cx, cy, s.cfg.Obstacles.Width, s.cfg.Obstacles.Height))
	}}
}

// WithAutoPlayer puts a controller in the player seat for AI-vs-AI
// rounds. It draws from its own stream so it does not disturb the
// opponent's decisions.
func WithAutoPlayer() SimOption {
	return SimOption{simOptDriver, func(s *Sim) {
		rng := rand.New(rand.NewSource(s.seed + 1)) // #nosec G404 -- game only
		pilot := NewEnemyController(s.Round.player, controllerParams(s.cfg.Controller), rng)
		pilot.attachEvents(s.Round.events)
		s.Round.autoPilot = pilot
	}}
}

// NewSim builds a headless round. Without options it is a seeded,
// silent, obstacle-free arena with the stock tanks.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		cfg:  config.Default(),
		seed: 1,
	}
	s.cfg.Obstacles.Count = 0

	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	s.Round = NewRound(s.cfg, s.seed, s.log)
	if s.eventCap > 0 {
		s.Round.events = NewEventLog(s.eventCap)
		s.Round.ctrl.attachEvents(s.Round.events)
	}
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(s)
		}
	}
	for _, o := range opts {
		if o.kind == simOptDriver {
			o.fn(s)
		}
	}
	return s
}

// Step advances one tick with explicit player input. With an auto
// player installed the input is ignored.
func (s *Sim) Step(move Vec2, fire bool, dt float64) {
	s.Round.Advance(FrameInput{Move: move, Fire: fire}, dt)
}

// RunTicks advances n idle ticks of dt seconds.
func (s *Sim) RunTicks(n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Step(Vec2{}, false, dt)
	}
}

// RunUntil advances idle ticks until pred holds, up to maxTicks.
// Returns the tick count at satisfaction, or -1 on budget exhaustion.
func (s *Sim) RunUntil(pred func(*Sim) bool, maxTicks int, dt float64) int {
	for i := 0; i < maxTicks; i++ {
		s.Step(Vec2{}, false, dt)
		if pred(s) {
			return s.Round.tick
		}
	}
	return -1
}

// TankSnapshot copies one tank's observable state.
type TankSnapshot struct {
	Name   string
	X, Y   float64
	Facing Facing
	Health int
	Alive  bool
}

// SimSnapshot is a point-in-time summary of the round.
type SimSnapshot struct {
	Tick      int
	Outcome   RoundOutcome
	Player    TankSnapshot
	Enemy     TankSnapshot
	Bullets   int
	Obstacles int
}

// Snapshot captures the current round state.
func (s *Sim) Snapshot() SimSnapshot {
	return SimSnapshot{
		Tick:      s.Round.tick,
		Outcome:   s.Round.outcome,
		Player:    snapTank(s.Round.player),
		Enemy:     snapTank(s.Round.enemy),
		Bullets:   len(s.Round.bullets),
		Obstacles: len(s.Round.obstacles),
	}
}

func snapTank(t *Tank) TankSnapshot {
	return TankSnapshot{
		Name:   t.name,
		X:      t.pos.X,
		Y:      t.pos.Y,
		Facing: t.facing,
		Health: t.health,
		Alive:  t.Alive(),
	}
}
