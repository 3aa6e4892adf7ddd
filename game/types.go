package game

import "golang.org/x/exp/rand"

// Point is a position in grid-cell coordinates. All game logic works in
// cells; only the renderer knows about pixels.
type Point struct {
	X, Y int
}

// Add returns p shifted by d, wrapped onto a grid of the given dimensions.
// Exiting one edge re-enters from the opposite edge.
func (p Point) Add(d Point, width, height int) Point {
	return Point{
		X: (p.X + d.X + width) % width,
		Y: (p.Y + d.Y + height) % height,
	}
}

// Direction represents one of the four cardinal movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// ToPoint converts a Direction into a unit displacement vector. Y grows
// downward, matching screen coordinates.
func (d Direction) ToPoint() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// randomDirection picks one of the four canonical directions.
func randomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4) + 1)
}

// Color is an engine-neutral RGB triple. The ui package converts it to the
// renderer's own color type.
type Color struct {
	R, G, B uint8
}
