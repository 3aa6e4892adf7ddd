package game

import "golang.org/x/exp/rand"

// Apple occupies a single grid cell. Eating it grows the snake by one.
type Apple struct {
	Pos Point
}

// Randomize moves the apple to a uniformly random free cell. Occupied cells
// are rejected and redrawn, so the apple never lands on the snake. When the
// snake covers the whole grid there is no free cell to sample; the apple
// stays where it is.
func (a *Apple) Randomize(width, height int, occupied []Point, rng *rand.Rand) {
	if len(occupied) >= width*height {
		return
	}
	for {
		pos := Point{X: rng.Intn(width), Y: rng.Intn(height)}
		if !containsPoint(occupied, pos) {
			a.Pos = pos
			return
		}
	}
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
