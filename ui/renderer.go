package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

const (
	borderPadding = 10  // padding around the game area
	statsHeight   = 24  // text strip under the grid
	graphHeight   = 80  // per-run score graph at the bottom
	maxGraphRuns  = 64  // maximum number of runs to show in the graph
	statsSpacing  = 130 // fixed spacing between stats labels
)

// Renderer draws a Game onto the raylib window. All pixel math lives here;
// the game package only ever sees grid cells.
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32

	background rl.Color
	snakeBody  rl.Color
	snakeHead  rl.Color
	apple      rl.Color
	border     rl.Color
}

// NewRenderer builds a renderer for the given config. The head color is
// derived by brightening the body color.
func NewRenderer(cfg game.Config) *Renderer {
	return &Renderer{
		cellSize:   int32(cfg.CellSize),
		offsetX:    borderPadding,
		offsetY:    borderPadding,
		background: toRaylib(cfg.Background),
		snakeBody:  toRaylib(cfg.SnakeBody),
		snakeHead:  brighten(toRaylib(cfg.SnakeBody)),
		apple:      toRaylib(cfg.Apple),
		border:     toRaylib(cfg.Border),
	}
}

// WindowSize returns the window dimensions needed to fit the grid, the
// stats strip and the score graph.
func WindowSize(cfg game.Config) (int32, int32) {
	width := int32(cfg.ScreenWidth) + borderPadding*2
	height := int32(cfg.ScreenHeight) + borderPadding*4 + statsHeight + graphHeight
	return width, height
}

func toRaylib(c game.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func brighten(c rl.Color) rl.Color {
	scale := func(v uint8) uint8 {
		s := float32(v) * 1.3
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 255}
}

// Draw renders one full frame: grid backdrop, snake, apple, stats strip and
// score graph.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	gridW := int32(g.Grid.Width) * r.cellSize
	gridH := int32(g.Grid.Height) * r.cellSize

	// Grid backdrop with a one-pixel frame
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridW+2, gridH+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, r.background)

	snake := g.Snake()
	for i, p := range snake.Body {
		color := r.snakeBody
		if i == 0 {
			color = r.snakeHead
		}
		r.drawCell(p, color)
	}
	r.drawCell(g.Apple().Pos, r.apple)

	r.drawStatsLine(g, gridH)
	r.drawScoreGraph(g, gridH)

	rl.EndDrawing()
}

// drawCell fills one grid cell and outlines it with the border color.
func (r *Renderer) drawCell(p game.Point, c rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, c)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, r.border)
}

func (r *Renderer) drawStatsLine(g *game.Game, gridH int32) {
	fontSize := int32(statsHeight - 6)
	y := r.offsetY + gridH + borderPadding
	x := r.offsetX

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score), x, y, fontSize, rl.White)
	x += statsSpacing
	rl.DrawText(fmt.Sprintf("Runs: %d", g.Stats.Runs()), x, y, fontSize, rl.White)
	x += statsSpacing
	rl.DrawText(fmt.Sprintf("High: %d", g.Stats.HighScore()), x, y, fontSize, rl.Green)
	x += statsSpacing
	rl.DrawText(fmt.Sprintf("Avg: %.1f", g.Stats.AverageScore()), x, y, fontSize, rl.Green)
	x += statsSpacing
	rl.DrawText(fmt.Sprintf("Run: %.0fs", g.ElapsedTime()), x, y, fontSize, rl.Purple)
}

// drawScoreGraph draws one bar per finished run, most recent on the right,
// scaled against the session high score.
func (r *Renderer) drawScoreGraph(g *game.Game, gridH int32) {
	scores := g.Stats.LastScores(maxGraphRuns)

	graphY := r.offsetY + gridH + borderPadding*2 + statsHeight
	graphW := int32(g.Grid.Width) * r.cellSize
	rl.DrawRectangle(r.offsetX, graphY, graphW, graphHeight, rl.DarkGray)

	if len(scores) == 0 {
		return
	}

	maxScore := 1
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	barWidth := graphW / maxGraphRuns
	if barWidth < 2 {
		barWidth = 2
	}
	scaleY := float32(graphHeight-4) / float32(maxScore)

	x := r.offsetX
	for _, s := range scores {
		barHeight := int32(float32(s) * scaleY)
		rl.DrawRectangle(
			x,
			graphY+graphHeight-barHeight,
			barWidth-1,
			barHeight,
			rl.Green)
		x += barWidth
	}
}
