package game

import "math"

// Box is an axis-aligned integer rectangle with exclusive right and
// bottom edges. Every collidable entity keeps one in sync with its
// floating-point position.
type Box struct {
	Left, Top int
	W, H      int
}

// NewBoxAt returns a w by h box centered on (cx, cy).
func NewBoxAt(cx, cy, w, h int) Box {
	return Box{Left: cx - w/2, Top: cy - h/2, W: w, H: h}
}

func (b Box) Right() int  { return b.Left + b.W }
func (b Box) Bottom() int { return b.Top + b.H }

// Center returns the box center. Entity sizes are even, so the center
// is exact.
func (b Box) Center() (int, int) {
	return b.Left + b.W/2, b.Top + b.H/2
}

// CenterVec returns the center as a vector.
func (b Box) CenterVec() Vec2 {
	cx, cy := b.Center()
	return Vec2{float64(cx), float64(cy)}
}

// SetCenter moves the box so its center lands on (cx, cy).
func (b *Box) SetCenter(cx, cy int) {
	b.Left = cx - b.W/2
	b.Top = cy - b.H/2
}

// SyncTo centers the box on the rounded position.
func (b *Box) SyncTo(pos Vec2) {
	b.SetCenter(int(math.Round(pos.X)), int(math.Round(pos.Y)))
}

// Intersects reports strict overlap. Boxes that only share an edge do
// not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right() && b.Right() > o.Left &&
		b.Top < o.Bottom() && b.Bottom() > o.Top
}

// Contains reports whether inner lies entirely within b.
func (b Box) Contains(inner Box) bool {
	return inner.Left >= b.Left && inner.Right() <= b.Right() &&
		inner.Top >= b.Top && inner.Bottom() <= b.Bottom()
}

// ClampTo translates the box so it lies inside bounds. A box larger
// than bounds on an axis is centered on that axis.
func (b Box) ClampTo(bounds Box) Box {
	out := b
	switch {
	case out.W >= bounds.W:
		out.Left = bounds.Left + (bounds.W-out.W)/2
	case out.Left < bounds.Left:
		out.Left = bounds.Left
	case out.Right() > bounds.Right():
		out.Left = bounds.Right() - out.W
	}
	switch {
	case out.H >= bounds.H:
		out.Top = bounds.Top + (bounds.H-out.H)/2
	case out.Top < bounds.Top:
		out.Top = bounds.Top
	case out.Bottom() > bounds.Bottom():
		out.Top = bounds.Bottom() - out.H
	}
	return out
}

// CenterDist returns the center-to-center distance between two boxes.
func CenterDist(a, b Box) float64 {
	return a.CenterVec().Sub(b.CenterVec()).Len()
}
