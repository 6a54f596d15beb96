package game

// Collidable is anything a moving tank cannot pass through. IsUnit
// separates damageable units from inert terrain when bullets resolve
// strikes; movement treats both alike.
type Collidable interface {
	Bounds() Box
	IsUnit() bool
}

// overlapsAny reports whether box intersects any blocker.
func overlapsAny(box Box, blockers []Collidable) bool {
	for _, b := range blockers {
		if box.Intersects(b.Bounds()) {
			return true
		}
	}
	return false
}
