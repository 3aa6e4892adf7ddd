package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/ui"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "board width in pixels")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "board height in pixels")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (must evenly divide width and height)")
	flag.IntVar(&cfg.TickRate, "tick", cfg.TickRate, "game updates per second")
	bg := flag.String("bg", "", "background color as rrggbb")
	body := flag.String("snake", "", "snake body color as rrggbb")
	apple := flag.String("apple", "", "apple color as rrggbb")
	border := flag.String("border", "", "cell border color as rrggbb")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 picks a time-based seed")
	flag.Parse()

	colorFlags := []struct {
		value *string
		dst   *game.Color
		name  string
	}{
		{bg, &cfg.Background, "bg"},
		{body, &cfg.SnakeBody, "snake"},
		{apple, &cfg.Apple, "apple"},
		{border, &cfg.Border, "border"},
	}
	for _, cf := range colorFlags {
		if *cf.value == "" {
			continue
		}
		c, err := game.ParseHexColor(*cf.value)
		if err != nil {
			log.Fatalf("-%s: %v", cf.name, err)
		}
		*cf.dst = c
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg, *seed)

	winW, winH := ui.WindowSize(cfg)
	rl.InitWindow(winW, winH, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(cfg)
	tickInterval := time.Second / time.Duration(cfg.TickRate)
	lastUpdate := time.Now()

	// Escape and window close both end the loop via WindowShouldClose.
	for !rl.WindowShouldClose() {
		if dir, ok := ui.PollDirection(g.Snake().Direction); ok {
			g.Snake().StageDirection(dir)
		}

		// Rendering runs at 60 FPS, the game advances at its own tick rate.
		if time.Since(lastUpdate) >= tickInterval {
			g.Update()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}
}
