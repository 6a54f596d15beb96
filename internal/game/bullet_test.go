package game

import (
	"math"
	"testing"
)

func TestBulletAdvance(t *testing.T) {
	field := Box{Left: 0, Top: 0, W: 1000, H: 1000}
	b := NewBullet("owner", Vec2{300, 300}, Vec2{X: 1}, 360, 20, 20)
	b.Update(0.25, field)
	if b.Pos() != (Vec2{390, 300}) {
		t.Errorf("expected pos (390,300), got %v", b.Pos())
	}
	cx, cy := b.Bounds().Center()
	if cx != 390 || cy != 300 {
		t.Errorf("box center (%d,%d) out of sync", cx, cy)
	}
	if b.Expired() {
		t.Error("in-field shell expired")
	}
}

func TestBulletNegativeDTHolds(t *testing.T) {
	field := Box{Left: 0, Top: 0, W: 1000, H: 1000}
	b := NewBullet("owner", Vec2{300, 300}, Vec2{X: 1}, 360, 20, 20)
	b.Update(-1, field)
	if b.Pos() != (Vec2{300, 300}) {
		t.Errorf("negative dt moved the shell to %v", b.Pos())
	}
}

func TestBulletExpiresLeavingField(t *testing.T) {
	field := testField() // right edge at 592
	b := NewBullet("owner", Vec2{580, 300}, Vec2{X: 1}, 360, 20, 20)

	b.Update(1.0/30, field) // center 592, box [582,602): still clipping the field
	if b.Expired() {
		t.Fatal("shell expired while its box still touched the field")
	}
	b.Update(1.0/30, field) // center 604, box [594,614): fully out
	if !b.Expired() {
		t.Fatal("shell failed to expire after leaving the field")
	}
}

func TestBulletZeroDirectionDefaultsUp(t *testing.T) {
	b := NewBullet("owner", Vec2{300, 300}, Vec2{}, 360, 20, 20)
	if b.Dir() != (Vec2{0, -1}) {
		t.Errorf("expected fallback dir (0,-1), got %v", b.Dir())
	}
	if b.Facing() != FacingUp {
		t.Errorf("expected facing up, got %s", b.Facing())
	}
}

func TestBulletNormalizesDirection(t *testing.T) {
	b := NewBullet("owner", Vec2{300, 300}, Vec2{3, 4}, 360, 20, 20)
	d := b.Dir()
	if math.Abs(d.X-0.6) > 1e-12 || math.Abs(d.Y-0.8) > 1e-12 {
		t.Errorf("expected unit dir (0.6,0.8), got %v", d)
	}
}
