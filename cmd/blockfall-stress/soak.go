package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

// Result is what one session did during the soak.
type Result struct {
	Frames  int64
	Rounds  int
	Pieces  int
	Lines   int
	Best    int
	Scores  []int
	Update  Stats
	Systems []engine.SystemStats
	Actions map[play.Action]int
}

var soakActions = []play.Action{
	play.ActionNone,
	play.ActionNone,
	play.MoveLeft,
	play.MoveRight,
	play.Rotate,
	play.SoftDrop,
	play.HardDrop,
}

// Soak plays one session with random input until ctx is done, advancing
// frame of simulated time per step.
func Soak(ctx context.Context, cfg config.Config, frame time.Duration) (Result, error) {
	res := Result{Actions: make(map[play.Action]int)}

	session, err := play.New(cfg, func(ev tetris.Event) {
		switch ev.Kind {
		case tetris.EventSpawned:
			res.Pieces++
		case tetris.EventLinesCleared:
			res.Lines += ev.Rows
		case tetris.EventGameOver:
			res.Rounds++
			res.Scores = append(res.Scores, ev.Score)
			res.Best = max(res.Best, ev.Score)
		}
	})
	if err != nil {
		return res, err
	}

	rng := rand.New(rand.NewPCG(cfg.Pieces.Seed, 0x9e3779b97f4a7c15))

	for ctx.Err() == nil {
		action := soakActions[rng.IntN(len(soakActions))]
		if session.Game().Over() {
			action = play.Restart
		}
		if action != play.ActionNone {
			session.Push(action)
			res.Actions[action]++
		}

		start := time.Now()
		session.Step(frame)
		res.Update.Add(time.Since(start))
	}

	stats := session.Scheduler().GetStats()
	res.Frames = stats.Frames
	res.Systems = stats.Systems
	return res, nil
}
