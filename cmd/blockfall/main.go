package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/term"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write logs to this file; the screen belongs to the game.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Redraw interval.")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *printConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		return
	}

	closeLog, err := redirectLog(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	if err := run(cfg, *frame); err != nil {
		log.Printf("[blockfall] %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func run(cfg config.Config, frame time.Duration) error {
	var handlers []play.Handler

	var scores *highscore.Store
	if cfg.Scores.Enabled {
		s, err := highscore.Open(cfg.Scores.App, cfg.Board.Width, cfg.Board.Height)
		if err != nil {
			log.Printf("[highscore] Warning: %v (scores kept in memory)", err)
			s = highscore.NewMemoryStore(cfg.Board.Width, cfg.Board.Height)
		}
		scores = s
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
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(term.RgbBackground))
	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	renderer := term.NewRenderer()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				session.Push(term.ActionForEvent(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			if !session.Step(now.Sub(last)) {
				return nil
			}
			last = now

			if scores != nil {
				renderer.Best = scores.Best()
			}
			draw(screen, renderer, session.View())
		}
	}
}

func draw(screen tcell.Screen, r *term.Renderer, v play.View) {
	screen.Clear()
	if !r.Fits(screen, v.Width, v.Height) {
		w, h := r.Size(v.Width, v.Height)
		msg := fmt.Sprintf("terminal too small: need %dx%d", w, h)
		for i, ch := range msg {
			screen.SetContent(i, 0, ch, nil, tcell.StyleDefault.Foreground(term.RgbAlert))
		}
	} else {
		r.Draw(screen, v)
	}
	screen.Show()
}
