package game

import "math/rand"

// ObstacleParams tunes random terrain placement.
type ObstacleParams struct {
	Count       int
	W, H        int
	Inset       int     // keep-out margin inside the field where centers may fall
	MinSpacing  float64 // center-to-center floor between obstacles
	SafeRadius  float64 // clearance around each spawn point
	MaxAttempts int
}

// PlaceObstacles scatters up to p.Count obstacles inside field by
// rejection sampling: draw a center in the inset sub-rectangle, keep
// it only if it is clear of placed obstacles and spawn points.
// Exhausting the attempt budget yields fewer obstacles, which is a
// legal arena rather than an error.
func PlaceObstacles(rng *rand.Rand, field Box, spawns []Vec2, p ObstacleParams) []*Obstacle {
	minX := field.Left + p.Inset
	maxX := field.Right() - p.Inset
	minY := field.Top + p.Inset
	maxY := field.Bottom() - p.Inset
	if p.Count <= 0 || minX > maxX || minY > maxY {
		return nil
	}

	obstacles := make([]*Obstacle, 0, p.Count)
	for attempts := 0; len(obstacles) < p.Count && attempts < p.MaxAttempts; attempts++ {
		cx := minX + rng.Intn(maxX-minX+1)
		cy := minY + rng.Intn(maxY-minY+1)
		candidate := NewBoxAt(cx, cy, p.W, p.H)
		if placementClear(candidate, obstacles, spawns, p) {
			obstacles = append(obstacles, &Obstacle{box: candidate})
		}
	}
	return obstacles
}

func placementClear(candidate Box, placed []*Obstacle, spawns []Vec2, p ObstacleParams) bool {
	center := candidate.CenterVec()
	for _, o := range placed {
		if candidate.Intersects(o.box) {
			return false
		}
		if CenterDist(candidate, o.box) < p.MinSpacing {
			return false
		}
	}
	for _, s := range spawns {
		if center.Sub(s).Len() < p.SafeRadius {
			return false
		}
	}
	return true
}
