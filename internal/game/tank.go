package game

import (
	"math"

	"github.com/segmentio/ksuid"
)

// Collision resolver tuning. Push-apart only fires on shallow mutual
// overlaps; anything deeper is handled by the slide pass.
const (
	pushApartDist    = 2.0  // px nudged per tick when two centers sit too close
	overlapThreshold = 35.0 // px per-axis center delta below which push-apart applies
)

// TankParams bundles the tuning for one tank.
type TankParams struct {
	Name        string
	W, H        int
	Speed       float64 // px/s
	Health      int
	ReloadMS    int64
	BulletSpeed float64
	BulletW     int
	BulletH     int
}

// Tank is a mobile unit. The player's and the opponent's share this
// implementation and differ only in tuning and in who drives them.
type Tank struct {
	id   string
	name string

	// --- Kinematics ---
	pos    Vec2 // authoritative center position
	box    Box  // derived, resynced after every position change
	facing Facing
	speed  float64

	// --- Combat ---
	health   int
	reloadMS int64
	lastShot int64 // ms timestamp of the last successful shot

	// --- Shell spawning ---
	bulletSpeed float64
	bulletW     int
	bulletH     int
}

// NewTank creates a unit at spawn, facing up, with full health and its
// reload already elapsed so the first trigger pull at clock zero works.
func NewTank(p TankParams, spawn Vec2) *Tank {
	t := &Tank{
		id:          ksuid.New().String(),
		name:        p.Name,
		pos:         spawn,
		facing:      FacingUp,
		speed:       p.Speed,
		health:      p.Health,
		reloadMS:    p.ReloadMS,
		lastShot:    -p.ReloadMS,
		bulletSpeed: p.BulletSpeed,
		bulletW:     p.BulletW,
		bulletH:     p.BulletH,
	}
	t.box = Box{W: p.W, H: p.H}
	t.box.SyncTo(spawn)
	return t
}

func (t *Tank) ID() string     { return t.id }
func (t *Tank) Name() string   { return t.name }
func (t *Tank) Pos() Vec2      { return t.pos }
func (t *Tank) Bounds() Box    { return t.box }
func (t *Tank) IsUnit() bool   { return true }
func (t *Tank) Facing() Facing { return t.facing }
func (t *Tank) Health() int    { return t.health }
func (t *Tank) Alive() bool    { return t.health > 0 }

// Move applies one tick of movement intent. dir need not be normalized
// and may be zero, which keeps the current facing and position. The
// blockers are everything the tank cannot pass through this tick; the
// tank itself must not be in the set. The resolver runs in fixed
// order: full displacement, field clamp, push-apart, then axis slide.
func (t *Tank) Move(dir Vec2, dt float64, field Box, blockers []Collidable) {
	if dt < 0 {
		dt = 0
	}
	if !dir.IsZero() {
		dir = dir.Norm()
		t.facing = FacingOf(dir)
	}

	dx := dir.X * t.speed * dt
	dy := dir.Y * t.speed * dt
	if dx == 0 && dy == 0 {
		return
	}

	origin := t.pos

	t.pos.X += dx
	t.pos.Y += dy
	t.box.SyncTo(t.pos)
	t.clampToField(field)

	// Push-apart pass: one sweep over the blockers in order, nudging
	// the tank away from each shallow overlap along the dominant axis
	// of the center delta. No iteration to a fixed point.
	collided := false
	for _, b := range blockers {
		bb := b.Bounds()
		if !t.box.Intersects(bb) {
			continue
		}
		collided = true
		delta := t.box.CenterVec().Sub(bb.CenterVec())
		dist := delta.Len()
		if dist == 0 {
			continue
		}
		if math.Abs(delta.X) < overlapThreshold && math.Abs(delta.Y) < overlapThreshold {
			push := delta.Scale(pushApartDist / dist)
			if math.Abs(delta.X) > math.Abs(delta.Y) {
				t.pos.X += push.X
			} else {
				t.pos.Y += push.Y
			}
			t.box.SyncTo(t.pos)
		}
	}

	// Slide pass: when contact remains, discard the diagonal result
	// and redo the move on the dominant axis alone, flush against
	// whatever it hits. If that axis cannot resolve, the other axis
	// gets one attempt in the same manner. Residual overlap after
	// both attempts is tolerated until a later tick separates them.
	if collided && overlapsAny(t.box, blockers) {
		horizontal := math.Abs(dx) > math.Abs(dy)
		if !t.slideAxis(origin, dx, dy, horizontal, blockers) {
			t.slideAxis(origin, dx, dy, !horizontal, blockers)
		}
	}

	t.clampToField(field)
}

// slideAxis retries the displacement along one axis from the pre-move
// position, clamping the leading edge flush to each blocker it still
// hits, last blocker in order winning. Reports whether the tank ended
// the attempt free of contact.
func (t *Tank) slideAxis(origin Vec2, dx, dy float64, horizontal bool, blockers []Collidable) bool {
	t.pos = origin
	if horizontal {
		t.pos.X += dx
	} else {
		t.pos.Y += dy
	}
	t.box.SyncTo(t.pos)

	for _, b := range blockers {
		bb := b.Bounds()
		if !t.box.Intersects(bb) {
			continue
		}
		if horizontal {
			if dx > 0 {
				t.box.Left = bb.Left - t.box.W
			} else {
				t.box.Left = bb.Right()
			}
			cx, _ := t.box.Center()
			t.pos.X = float64(cx)
		} else {
			if dy > 0 {
				t.box.Top = bb.Top - t.box.H
			} else {
				t.box.Top = bb.Bottom()
			}
			_, cy := t.box.Center()
			t.pos.Y = float64(cy)
		}
	}
	return !overlapsAny(t.box, blockers)
}

func (t *Tank) clampToField(field Box) {
	if field.Contains(t.box) {
		return
	}
	t.box = t.box.ClampTo(field)
	t.pos = t.box.CenterVec()
}

// CanFire reports whether the reload interval has elapsed by nowMS.
func (t *Tank) CanFire(nowMS int64) bool {
	return nowMS-t.lastShot >= t.reloadMS
}

// Shoot spawns a shell along the current facing, flush with the firing
// edge, appends it to out, and resets the reload clock. A trigger pull
// before the reload has elapsed does nothing and returns nil.
func (t *Tank) Shoot(out *[]*Bullet, nowMS int64) *Bullet {
	if !t.CanFire(nowMS) {
		return nil
	}
	b := NewBullet(t.id, t.muzzlePoint(), t.facing.Vector(), t.bulletSpeed, t.bulletW, t.bulletH)
	*out = append(*out, b)
	t.lastShot = nowMS
	return b
}

// muzzlePoint is the shell spawn center: half the shell extent past
// the tank edge on the firing axis, centered on the other axis.
func (t *Tank) muzzlePoint() Vec2 {
	cx, cy := t.box.Center()
	switch t.facing {
	case FacingDown:
		return Vec2{float64(cx), float64(t.box.Bottom() + t.bulletH/2)}
	case FacingLeft:
		return Vec2{float64(t.box.Left - t.bulletW/2), float64(cy)}
	case FacingRight:
		return Vec2{float64(t.box.Right() + t.bulletW/2), float64(cy)}
	default:
		return Vec2{float64(cx), float64(t.box.Top - t.bulletH/2)}
	}
}

// TakeHit applies one point of damage and reports destruction. Health
// may go below zero; display layers floor it at zero.
func (t *Tank) TakeHit() bool {
	t.health--
	return t.health <= 0
}
