package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Games      int
	Board      string
	Randomizer string
	Frame      time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	Rounds         int
	Pieces         int
	Lines          int
	BestScore      int
	MedianScore    int
	UpdateTime     Stats
	Systems        []engine.SystemStats
	Actions        []ActionCount
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ActionCount struct {
	Action play.Action
	Count  int
}

// maxSamples bounds the reservoir kept for percentile estimates.
const maxSamples = 4096

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Count   int64
	Total   time.Duration
	Samples []time.Duration
}

// Add records one timing. Min, max and the total are exact; Samples is a
// uniform reservoir of at most maxSamples timings.
func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++
	s.Total += d

	if len(s.Samples) < maxSamples {
		s.Samples = append(s.Samples, d)
	} else if i := rand.Int64N(s.Count); i < maxSamples {
		s.Samples[i] = d
	}
}

// Merge folds another session's timings into s.
func (s *Stats) Merge(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	s.Max = max(s.Max, o.Max)
	s.Count += o.Count
	s.Total += o.Total
	s.Samples = append(s.Samples, o.Samples...)
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)

	if len(s.Samples) == 0 {
		return
	}
	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[len(sorted)*99/100]
}

// Merge folds the per-session results into the report totals. System
// timings are summed by name across sessions.
func (r *Report) Merge(results []Result) {
	var scores []int
	actions := make(map[play.Action]int)
	systems := make(map[string]*engine.SystemStats)
	var order []string

	for _, res := range results {
		r.TotalFrames += res.Frames
		r.Rounds += res.Rounds
		r.Pieces += res.Pieces
		r.Lines += res.Lines
		r.BestScore = max(r.BestScore, res.Best)
		scores = append(scores, res.Scores...)
		r.UpdateTime.Merge(res.Update)

		for a, n := range res.Actions {
			actions[a] += n
		}

		for _, sys := range res.Systems {
			agg, ok := systems[sys.Name]
			if !ok {
				copied := sys
				systems[sys.Name] = &copied
				order = append(order, sys.Name)
				continue
			}
			agg.ExecutionCount += sys.ExecutionCount
			agg.TotalDuration += sys.TotalDuration
			agg.MinDuration = min(agg.MinDuration, sys.MinDuration)
			agg.MaxDuration = max(agg.MaxDuration, sys.MaxDuration)
		}
	}

	if len(scores) > 0 {
		slices.Sort(scores)
		r.MedianScore = scores[len(scores)/2]
	}
	r.UpdateTime.Finalize()

	r.Systems = r.Systems[:0]
	for _, name := range order {
		sys := *systems[name]
		if sys.ExecutionCount > 0 {
			sys.AvgDuration = sys.TotalDuration / time.Duration(sys.ExecutionCount)
		}
		r.Systems = append(r.Systems, sys)
	}

	r.Actions = r.Actions[:0]
	for a, n := range actions {
		r.Actions = append(r.Actions, ActionCount{Action: a, Count: n})
	}
	slices.SortFunc(r.Actions, func(a, b ActionCount) int { return int(a.Action) - int(b.Action) })
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Sessions:** {{.Games}}
- **Board:** {{.Board}}
- **Randomizer:** {{.Randomizer}}
- **Simulated Frame:** {{.Frame}}

## Gameplay
- **Total Frames:** {{.TotalFrames}}
- **Finished Rounds:** {{.Rounds}}
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Best Score:** {{.BestScore}}
- **Median Score:** {{.MedianScore}}

## Input Mix
{{range .Actions}}- {{.Action}}: {{.Count}}
{{end}}
## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Step Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **P99:** {{.UpdateTime.P99}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
