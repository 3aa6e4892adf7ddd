package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

// PollDirection reads the arrow keys and returns the direction to stage, if
// any. A key pointing opposite to the current direction is ignored: a
// reversal would drive the head straight into the first body segment.
func PollDirection(cur game.Direction) (game.Direction, bool) {
	var want game.Direction
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		want = game.DirUp
	case rl.IsKeyPressed(rl.KeyDown):
		want = game.DirDown
	case rl.IsKeyPressed(rl.KeyLeft):
		want = game.DirLeft
	case rl.IsKeyPressed(rl.KeyRight):
		want = game.DirRight
	default:
		return game.DirNone, false
	}
	if want == cur.Opposite() {
		return game.DirNone, false
	}
	return want, true
}
