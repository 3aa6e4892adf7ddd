package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults mirror the classic 640x480 board with 20px cells at 10 updates
// per second.
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultTickRate     = 10
)

// Config holds every tunable of the game. Screen dimensions are in pixels;
// the grid is derived by dividing them by the cell size.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	TickRate     int // game updates per second

	Background Color
	SnakeBody  Color
	Apple      Color
	Border     Color
}

// DefaultConfig returns the standard board setup.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		CellSize:     DefaultCellSize,
		TickRate:     DefaultTickRate,
		Background:   Color{R: 0, G: 0, B: 0},
		SnakeBody:    Color{R: 0, G: 255, B: 0},
		Apple:        Color{R: 255, G: 0, B: 0},
		Border:       Color{R: 93, G: 216, B: 228},
	}
}

// Validate reports the first configuration error found. The cell size must
// evenly divide both screen dimensions so the grid has no partial cells.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("cell size %d must evenly divide screen %dx%d", c.CellSize, c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// GridWidth returns the board width in cells.
func (c Config) GridWidth() int { return c.ScreenWidth / c.CellSize }

// GridHeight returns the board height in cells.
func (c Config) GridHeight() int { return c.ScreenHeight / c.CellSize }

// ParseHexColor parses an "rrggbb" color, with an optional leading '#'.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
