package game

import (
	"math"
	"math/rand"
)

// ControllerParams tunes the autonomous opponent.
type ControllerParams struct {
	DecisionMinSec float64 // committed interval lower bound
	DecisionMaxSec float64 // committed interval upper bound
	SeekProb       float64 // chance a decision pursues the target
	RandomFireProb float64 // per-tick impulse shot chance
	AlignTolerance float64 // px off-axis slack for aimed fire
}

// decisionState is the controller's commitment phase.
type decisionState int

const (
	stateDeciding  decisionState = iota // timer lapsed, pick anew this tick
	stateCommitted                      // riding the chosen direction
)

func (s decisionState) String() string {
	switch s {
	case stateDeciding:
		return "deciding"
	case stateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// EnemyController drives a tank toward and against an opponent. It
// re-decides its heading on a randomized interval, fires when lined up
// with the target, and abandons a heading that stops making progress.
type EnemyController struct {
	tank   *Tank
	params ControllerParams
	rng    *rand.Rand

	state     decisionState
	direction Vec2
	timer     float64 // seconds left on the current commitment
	events    *EventLog
}

// NewEnemyController wires a controller to the tank it drives. The rng
// is owned by the controller; hand it a seeded source for reproducible
// rounds.
func NewEnemyController(tank *Tank, params ControllerParams, rng *rand.Rand) *EnemyController {
	return &EnemyController{
		tank:   tank,
		params: params,
		rng:    rng,
		state:  stateDeciding,
	}
}

// attachEvents lets the round observe decisions, stalls, and shots.
func (c *EnemyController) attachEvents(ev *EventLog) {
	c.events = ev
}

// Update runs one controller tick: lapse the commitment timer,
// re-decide if it ran out, move, detect a wedged tank, and evaluate
// the fire rule. The blockers are the mover's view for this tick.
func (c *EnemyController) Update(dt float64, target *Tank, field Box, blockers []Collidable, out *[]*Bullet, nowMS int64, tick int) {
	if dt < 0 {
		dt = 0
	}
	c.timer -= dt
	if c.timer <= 0 {
		c.state = stateDeciding
	}
	if c.state == stateDeciding {
		c.direction = c.pickDirection(target)
		c.timer = c.params.DecisionMinSec + c.rng.Float64()*(c.params.DecisionMaxSec-c.params.DecisionMinSec)
		c.state = stateCommitted
		c.events.Add(tick, c.tank.name, EventDecision, c.headingLabel())
	}

	beforeX, beforeY := c.tank.box.Center()
	c.tank.Move(c.direction, dt, field, blockers)
	afterX, afterY := c.tank.box.Center()
	if afterX == beforeX && afterY == beforeY && !c.direction.IsZero() {
		// Wedged against something. Zeroing the timer forces a fresh
		// decision on the next tick.
		c.timer = 0
		c.events.Add(tick, c.tank.name, EventStall, c.headingLabel())
	}

	if c.shouldFire(target) {
		if b := c.tank.Shoot(out, nowMS); b != nil {
			c.events.Add(tick, c.tank.name, EventShot, b.facing.String())
		}
	}
}

// pickDirection chooses the next heading: usually the dominant axis
// toward the target, otherwise a uniform draw over the four cardinals
// and holding still. A target dead on our center means hold.
func (c *EnemyController) pickDirection(target *Tank) Vec2 {
	if target != nil && c.rng.Float64() < c.params.SeekProb {
		delta := target.Bounds().CenterVec().Sub(c.tank.box.CenterVec())
		switch {
		case math.Abs(delta.X) > math.Abs(delta.Y):
			if delta.X > 0 {
				return Vec2{X: 1}
			}
			return Vec2{X: -1}
		case delta.Y != 0:
			if delta.Y > 0 {
				return Vec2{Y: 1}
			}
			return Vec2{Y: -1}
		default:
			return Vec2{}
		}
	}
	choices := [...]Vec2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {}}
	return choices[c.rng.Intn(len(choices))]
}

// shouldFire is the per-tick fire rule: shoot when axis-aligned with
// the target and facing along that axis, or occasionally on impulse.
func (c *EnemyController) shouldFire(target *Tank) bool {
	if target != nil {
		self := c.tank.box.CenterVec()
		other := target.Bounds().CenterVec()
		if math.Abs(self.Y-other.Y) <= c.params.AlignTolerance && c.tank.facing.Horizontal() {
			return true
		}
		if math.Abs(self.X-other.X) <= c.params.AlignTolerance && !c.tank.facing.Horizontal() {
			return true
		}
	}
	return c.rng.Float64() < c.params.RandomFireProb
}

func (c *EnemyController) headingLabel() string {
	if c.direction.IsZero() {
		return "hold"
	}
	return FacingOf(c.direction).String()
}
