package game

import (
	"math/rand"
	"testing"
)

func testObstacleParams() ObstacleParams {
	return ObstacleParams{
		Count:       6,
		W:           100,
		H:           32,
		Inset:       100,
		MinSpacing:  100,
		SafeRadius:  80,
		MaxAttempts: 1000,
	}
}

func testSpawns(field Box) []Vec2 {
	return []Vec2{
		{X: float64(field.Left + 70), Y: float64(field.Bottom() - 70)},
		{X: float64(field.Right() - 70), Y: float64(field.Top + 70)},
	}
}

func TestInvariant_ObstaclePlacement(t *testing.T) {
	field := testField()
	spawns := testSpawns(field)
	p := testObstacleParams()

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
		obstacles := PlaceObstacles(rng, field, spawns, p)

		if len(obstacles) > p.Count {
			t.Fatalf("seed %d: placed %d obstacles, budget %d", seed, len(obstacles), p.Count)
		}
		for i, o := range obstacles {
			if !field.Contains(o.Bounds()) {
				t.Fatalf("seed %d: obstacle %d box %+v outside field", seed, i, o.Bounds())
			}
			for j := i + 1; j < len(obstacles); j++ {
				a, b := o.Bounds(), obstacles[j].Bounds()
				if a.Intersects(b) {
					t.Fatalf("seed %d: obstacles %d and %d overlap", seed, i, j)
				}
				if d := CenterDist(a, b); d < p.MinSpacing {
					t.Fatalf("seed %d: obstacles %d and %d only %v apart", seed, i, j, d)
				}
			}
			for _, s := range spawns {
				if d := o.Bounds().CenterVec().Sub(s).Len(); d < p.SafeRadius {
					t.Fatalf("seed %d: obstacle %d within %v of a spawn", seed, i, d)
				}
			}
		}
	}
}

func TestPlaceObstaclesExhaustsAttemptBudget(t *testing.T) {
	field := testField()
	p := testObstacleParams()
	p.MinSpacing = 10000 // nothing can coexist

	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- game only
	obstacles := PlaceObstacles(rng, field, testSpawns(field), p)
	if len(obstacles) > 1 {
		t.Fatalf("expected at most one obstacle under an impossible spacing, got %d", len(obstacles))
	}
}

func TestPlaceObstaclesZeroCount(t *testing.T) {
	p := testObstacleParams()
	p.Count = 0
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- game only
	if got := PlaceObstacles(rng, testField(), nil, p); got != nil {
		t.Fatalf("expected no obstacles, got %d", len(got))
	}
}

func TestPlaceObstaclesInsetLeavesNoRoom(t *testing.T) {
	p := testObstacleParams()
	p.Inset = 300 // wider than half the field

	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- game only
	if got := PlaceObstacles(rng, testField(), nil, p); got != nil {
		t.Fatalf("expected no obstacles in a degenerate inset, got %d", len(got))
	}
}

func TestPlaceObstaclesDeterministicPerSeed(t *testing.T) {
	field := testField()
	spawns := testSpawns(field)
	p := testObstacleParams()

	first := PlaceObstacles(rand.New(rand.NewSource(99)), field, spawns, p)  // #nosec G404 -- game only
	second := PlaceObstacles(rand.New(rand.NewSource(99)), field, spawns, p) // #nosec G404 -- game only

	if len(first) != len(second) {
		t.Fatalf("same seed placed %d then %d obstacles", len(first), len(second))
	}
	for i := range first {
		if first[i].Bounds() != second[i].Bounds() {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, first[i].Bounds(), second[i].Bounds())
		}
	}
}
