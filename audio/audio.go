// Package audio plays short tones for game events through the system
// speaker.
package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one sine tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// CueFor maps a game event to its tone. Spawns are silent. Line clears rise
// by a major third per extra row.
func CueFor(ev tetris.Event) (Cue, bool) {
	switch ev.Kind {
	case tetris.EventLanded:
		return Cue{Freq: 196, Duration: 40 * time.Millisecond}, true
	case tetris.EventLinesCleared:
		rows := max(ev.Rows, 1)
		freq := 523.25 * math.Pow(2, float64(rows-1)*4/12)
		return Cue{Freq: freq, Duration: 90*time.Millisecond + time.Duration(rows)*30*time.Millisecond}, true
	case tetris.EventGameOver:
		return Cue{Freq: 98, Duration: 600 * time.Millisecond}, true
	}
	return Cue{}, false
}

// Streamer renders c at sr, attenuated so overlapping cues do not clip.
func (c Cue) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, fmt.Errorf("failed to build %.0fHz tone: %w", c.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.Duration), tone),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Player mixes cues into the speaker. A Player that was never initialized,
// or whose initialization failed, ignores every event.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences the player without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Handle plays the cue for ev, if any. It matches play.Handler.
func (p *Player) Handle(ev tetris.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	cue, ok := CueFor(ev)
	if !ok {
		return
	}

	streamer, err := cue.Streamer(sampleRate)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
