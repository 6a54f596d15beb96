package game

import (
	"math/rand"
	"testing"
)

func testControllerParams() ControllerParams {
	return ControllerParams{
		DecisionMinSec: 0.35,
		DecisionMaxSec: 0.9,
		SeekProb:       0.6,
		RandomFireProb: 0.008,
		AlignTolerance: 18,
	}
}

func newTestController(tank *Tank, p ControllerParams, seed int64) (*EnemyController, *EventLog) {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	c := NewEnemyController(tank, p, rng)
	ev := NewEventLog(0)
	c.attachEvents(ev)
	return c, ev
}

func TestControllerFirstDecisionSetsTimerInRange(t *testing.T) {
	tank := newTestTank("enemy", 300, 300)
	c, ev := newTestController(tank, testControllerParams(), 7)
	var out []*Bullet

	c.Update(1.0/60, nil, testField(), nil, &out, 0, 1)

	if c.state != stateCommitted {
		t.Fatalf("expected committed after first tick, got %s", c.state)
	}
	if c.timer < 0.35 || c.timer > 0.9 {
		t.Errorf("commitment timer %v outside [0.35, 0.9]", c.timer)
	}
	if got := ev.Count(EventDecision); got != 1 {
		t.Errorf("expected 1 decision event, got %d", got)
	}
}

func TestControllerHoldsHeadingWhileCommitted(t *testing.T) {
	p := testControllerParams()
	p.DecisionMinSec = 10
	p.DecisionMaxSec = 10
	p.SeekProb = 1
	p.RandomFireProb = 0

	tank := newTestTank("enemy", 300, 300)
	target := newTestTank("player", 520, 330) // off-row so alignment never fires
	c, ev := newTestController(tank, p, 7)
	var out []*Bullet

	for i := 1; i <= 10; i++ {
		c.Update(0.016, target, testField(), nil, &out, int64(i*16), i)
	}
	if got := ev.Count(EventDecision); got != 1 {
		t.Errorf("expected a single decision over the commitment, got %d", got)
	}
	if c.direction != (Vec2{X: 1}) {
		t.Errorf("expected seek heading right, got %v", c.direction)
	}
}

func TestControllerRedecidesWhenTimerLapses(t *testing.T) {
	p := testControllerParams()
	p.DecisionMinSec = 0.1
	p.DecisionMaxSec = 0.1
	p.SeekProb = 1
	p.RandomFireProb = 0

	tank := newTestTank("enemy", 300, 300)
	target := newTestTank("player", 520, 330)
	c, ev := newTestController(tank, p, 7)
	var out []*Bullet

	// 14 ticks of 16ms against a 100ms commitment: decisions land on
	// ticks 1 and 8.
	for i := 1; i <= 14; i++ {
		c.Update(0.016, target, testField(), nil, &out, int64(i*16), i)
	}
	decisions := ev.Filter(EventDecision)
	if len(decisions) != 2 {
		t.Fatalf("expected 2 decisions, got %d", len(decisions))
	}
	if decisions[0].Tick != 1 || decisions[1].Tick != 8 {
		t.Errorf("decision ticks = %d, %d; want 1, 8", decisions[0].Tick, decisions[1].Tick)
	}
}

func TestScenario_ControllerStallForcesRedecision(t *testing.T) {
	t.Log("=== TestScenario_ControllerStallForcesRedecision ===")
	t.Log("Tank wedged against a wall keeps its heading for zero ticks")

	p := testControllerParams()
	p.SeekProb = 1
	p.RandomFireProb = 0

	tank := newTestTank("enemy", 300, 300)
	target := newTestTank("player", 500, 330) // off-row, so no aligned fire
	wall := NewObstacle(376, 300, 100, 32)    // flush with the tank's right edge
	blockers := []Collidable{wall}
	c, ev := newTestController(tank, p, 7)
	var out []*Bullet

	c.Update(1.0/60, target, testField(), blockers, &out, 0, 1)
	c.Update(1.0/60, target, testField(), blockers, &out, 16, 2)

	if got := ev.Count(EventStall); got < 1 {
		t.Fatalf("expected at least one stall event, got %d", got)
	}
	if got := ev.Count(EventDecision); got != 2 {
		t.Errorf("expected a fresh decision each stalled tick, got %d", got)
	}
	cx, cy := tank.box.Center()
	if cx != 300 || cy != 300 {
		t.Errorf("wedged tank moved to (%d,%d)", cx, cy)
	}
	if len(out) != 0 {
		t.Errorf("expected no shots while off-row, got %d", len(out))
	}
}

func TestScenario_ControllerFiresWhenAligned(t *testing.T) {
	t.Log("=== TestScenario_ControllerFiresWhenAligned ===")
	t.Log("Row-aligned target, horizontal facing: exactly one shot until reload")

	p := testControllerParams()
	p.SeekProb = 1
	p.RandomFireProb = 0

	tank := newTestTank("enemy", 300, 300)
	target := newTestTank("player", 500, 300)
	c, ev := newTestController(tank, p, 7)
	var out []*Bullet

	c.Update(1.0/60, target, testField(), nil, &out, 0, 1)
	if len(out) != 1 {
		t.Fatalf("expected an aligned shot on the first tick, got %d", len(out))
	}
	if out[0].Facing() != FacingRight {
		t.Errorf("expected the shell heading right, got %s", out[0].Facing())
	}

	c.Update(1.0/60, target, testField(), nil, &out, 16, 2)
	if len(out) != 1 {
		t.Fatalf("expected the reload to gate the second tick, got %d shells", len(out))
	}
	if got := ev.Count(EventShot); got != 1 {
		t.Errorf("expected 1 shot event, got %d", got)
	}
}

func TestControllerShouldFireRules(t *testing.T) {
	p := testControllerParams()
	p.RandomFireProb = 0
	field := testField()

	cases := []struct {
		name   string
		target Vec2
		facing Vec2
		want   bool
	}{
		{"row aligned facing right", Vec2{500, 310}, Vec2{X: 1}, true},
		{"row aligned facing left", Vec2{100, 310}, Vec2{X: -1}, true},
		{"row offset beyond tolerance", Vec2{500, 330}, Vec2{X: 1}, false},
		{"column aligned facing up", Vec2{310, 100}, Vec2{Y: -1}, true},
		{"column aligned facing down", Vec2{310, 420}, Vec2{Y: 1}, true},
		{"row aligned but facing up", Vec2{500, 300}, Vec2{Y: -1}, false},
		{"column aligned but facing right", Vec2{300, 100}, Vec2{X: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tank := newTestTank("enemy", 300, 300)
			tank.Move(tc.facing, 0, field, nil) // turn in place
			target := newTestTank("player", tc.target.X, tc.target.Y)
			c, _ := newTestController(tank, p, 7)
			if got := c.shouldFire(target); got != tc.want {
				t.Errorf("shouldFire = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestControllerImpulseFire(t *testing.T) {
	p := testControllerParams()
	p.RandomFireProb = 1

	tank := newTestTank("enemy", 300, 300)
	c, _ := newTestController(tank, p, 7)
	var out []*Bullet

	c.Update(1.0/60, nil, testField(), nil, &out, 0, 1)
	if len(out) != 1 {
		t.Fatalf("expected an impulse shot with probability 1, got %d", len(out))
	}
}

func TestControllerSeekHoldsOnExactOverlap(t *testing.T) {
	p := testControllerParams()
	p.SeekProb = 1

	tank := newTestTank("enemy", 300, 300)
	target := newTestTank("player", 300, 300)
	c, _ := newTestController(tank, p, 7)

	if dir := c.pickDirection(target); !dir.IsZero() {
		t.Errorf("expected hold on a dead-center target, got %v", dir)
	}
	if c.headingLabel() != "hold" {
		t.Errorf("expected heading label hold, got %q", c.headingLabel())
	}
}

func TestControllerSeekPicksDominantAxis(t *testing.T) {
	p := testControllerParams()
	p.SeekProb = 1

	cases := []struct {
		name   string
		target Vec2
		want   Vec2
	}{
		{"target right", Vec2{500, 310}, Vec2{X: 1}},
		{"target left", Vec2{100, 310}, Vec2{X: -1}},
		{"target below", Vec2{310, 420}, Vec2{Y: 1}},
		{"target above", Vec2{310, 100}, Vec2{Y: -1}},
		{"tie goes vertical", Vec2{350, 350}, Vec2{Y: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tank := newTestTank("enemy", 300, 300)
			target := newTestTank("player", tc.target.X, tc.target.Y)
			c, _ := newTestController(tank, p, 7)
			if got := c.pickDirection(target); got != tc.want {
				t.Errorf("pickDirection = %v, want %v", got, tc.want)
			}
		})
	}
}
