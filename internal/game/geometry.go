package game

import "math"

// Vec2 is a point or direction in screen space (+X right, +Y down).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }

// Norm returns the unit vector with the same direction. The zero
// vector comes back unchanged.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Facing is one of the four cardinal orientations a unit can display
// and fire along. It is always derived from the latest non-zero
// movement direction, never mutated on its own.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector maps a facing back to its unit direction.
func (f Facing) Vector() Vec2 {
	switch f {
	case FacingDown:
		return Vec2{0, 1}
	case FacingLeft:
		return Vec2{-1, 0}
	case FacingRight:
		return Vec2{1, 0}
	default:
		return Vec2{0, -1}
	}
}

// Horizontal reports whether the facing lies on the X axis.
func (f Facing) Horizontal() bool {
	return f == FacingLeft || f == FacingRight
}

// FacingOf maps a direction to the cardinal facing of its dominant
// axis. A strictly larger |X| wins horizontal; ties go vertical. The
// zero vector faces up.
func FacingOf(dir Vec2) Facing {
	if dir.IsZero() {
		return FacingUp
	}
	if math.Abs(dir.X) > math.Abs(dir.Y) {
		if dir.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if dir.Y > 0 {
		return FacingDown
	}
	return FacingUp
}
