package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Grid is the board size in cells.
type Grid struct {
	Width  int
	Height int
}

// Game owns the full game state: grid, entities, RNG and run statistics.
// It is the explicit context handed to the renderer each frame, so the
// update logic stays testable without a window.
type Game struct {
	UUID  string
	Grid  Grid
	snake *Snake
	apple *Apple
	rng   *rand.Rand

	Score    int
	Ticks    int
	runStart time.Time
	Stats    *Stats
}

// NewGame builds a game from a validated config. The seed makes every run
// reproducible; pass a time-derived value for normal play.
func NewGame(cfg Config, seed uint64) *Game {
	rng := rand.New(rand.NewSource(seed))
	grid := Grid{Width: cfg.GridWidth(), Height: cfg.GridHeight()}
	snake := NewSnake(Point{X: grid.Width / 2, Y: grid.Height / 2}, randomDirection(rng))

	g := &Game{
		UUID:     uuid.New().String(),
		Grid:     grid,
		snake:    snake,
		apple:    &Apple{},
		rng:      rng,
		runStart: time.Now(),
		Stats:    NewStats(),
	}
	g.apple.Randomize(grid.Width, grid.Height, snake.Body, rng)
	return g
}

// Snake returns the player entity.
func (g *Game) Snake() *Snake { return g.snake }

// Apple returns the current apple.
func (g *Game) Apple() *Apple { return g.apple }

// Update advances the game by one tick: the staged direction is committed,
// the snake moves, then collisions and eating are resolved. Self-collision
// is checked after the move against the remaining body, so chasing the tail
// into a just-vacated cell is legal.
func (g *Game) Update() {
	g.Ticks++
	g.snake.commitDirection()
	g.snake.Move(g.Grid.Width, g.Grid.Height)

	switch {
	case g.snake.hitSelf():
		g.Reset()
	case g.snake.Head() == g.apple.Pos:
		g.snake.Grow()
		g.Score++
		g.apple.Randomize(g.Grid.Width, g.Grid.Height, g.snake.Body, g.rng)
	}
}

// Reset ends the current run: its score and duration are recorded, the
// snake shrinks back to one cell and the apple moves off the new body.
func (g *Game) Reset() {
	now := time.Now()
	g.Stats.AddRun(g.Score, g.runStart, now)
	g.Score = 0
	g.runStart = now
	g.snake.Reset(g.Grid.Width, g.Grid.Height, g.rng)
	g.apple.Randomize(g.Grid.Width, g.Grid.Height, g.snake.Body, g.rng)
}

// ElapsedTime returns the current run's duration in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.runStart).Seconds()
}
