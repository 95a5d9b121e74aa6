package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/play"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 720
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := &Game{}
	var handlers []play.Handler

	if cfg.Scores.Enabled {
		scores, err := highscore.Open(cfg.Scores.App, cfg.Board.Width, cfg.Board.Height)
		if err != nil {
			log.Printf("[highscore] Warning: %v (scores kept in memory)", err)
			scores = highscore.NewMemoryStore(cfg.Board.Width, cfg.Board.Height)
		}
		game.Scores = scores
		handlers = append(handlers, scores.Handle)
	}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("[audio] Warning: %v (sound disabled)", err)
		}
		defer player.Close()
		handlers = append(handlers, player.Handle)
	}

	session, err := play.New(cfg, handlers...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	game.Session = session

	if *debug {
		world := session.World()
		game.ImguiBackend = engine.NewResource(world, debugui_ebiten.NewImguiBackend("Blockfall", ScreenWidth, ScreenHeight))
		game.InputState = engine.NewResource(world, debugui.ImguiInputState{})

		overlays := engine.NewResource(world, debugui.Overlays{})
		stats := debugui.NewPerformanceStats(120)
		timer := debugui.NewFrameTimer()
		overlays.Get().Add("performance", func() {
			stats.Render(session.Scheduler(), timer.GetDeltaTime())
		})
		overlays.Get().Add("game", func() {
			renderGameWindow(session)
		})

		session.Register(debugui.NewImguiSystem(world))
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatalf("Game stopped: %v", err)
	}
}
