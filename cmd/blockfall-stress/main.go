package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", runtime.NumCPU(), "The number of sessions to play concurrently.")
	seed := flag.Uint64("seed", 1, "Base seed; session i uses seed+i for pieces and input.")
	randomizer := flag.String("randomizer", config.RandomizerUniform, "Piece randomizer: uniform or bag.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time advanced per frame.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	sessionLog := flag.Bool("session-log", false, "Keep per-round session logging.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Pieces.Randomizer = *randomizer
	cfg.Audio.Enabled = false
	cfg.Scores.Enabled = false
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	if *games < 1 {
		log.Fatalf("Invalid flags: -games must be >= 1, got %d", *games)
	}

	log.Println("Starting blockfall stress test...")

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Board:          fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		Randomizer:     cfg.Pieces.Randomizer,
		Frame:          *frame,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logOutput := log.Writer()
	if !*sessionLog {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results := make([]Result, *games)
	errs := make([]error, *games)

	var wg sync.WaitGroup
	for i := range *games {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gameCfg := cfg
			gameCfg.Pieces.Seed = *seed + uint64(i)
			results[i], errs[i] = Soak(ctx, gameCfg, *frame)
		}()
	}
	wg.Wait()

	log.SetOutput(logOutput)

	for i, err := range errs {
		if err != nil {
			log.Fatalf("Session %d failed: %v", i, err)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Merge(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
