package game

// Obstacle is an immobile collidable placed once at round start. It
// blocks tank movement and absorbs bullets.
type Obstacle struct {
	box Box
}

// NewObstacle returns an obstacle centered on (cx, cy).
func NewObstacle(cx, cy, w, h int) *Obstacle {
	return &Obstacle{box: NewBoxAt(cx, cy, w, h)}
}

func (o *Obstacle) Bounds() Box { return o.box }
func (o *Obstacle) IsUnit() bool { return false }
