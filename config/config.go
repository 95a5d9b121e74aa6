// Package config loads the settings shared by the blockfall frontends from
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// DefaultFile is read by LoadDefault when it exists in the working directory.
const DefaultFile = "blockfall.yaml"

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"

	ColorsRandom = "random"
	ColorsKind   = "kind"
)

type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Pieces  PiecesConfig  `yaml:"pieces"`
	Audio   AudioConfig   `yaml:"audio"`
	Scores  ScoresConfig  `yaml:"scores"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig sets the fall speed. With LevelStep zero every level falls
// at Interval.
type GravityConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MinInterval time.Duration `yaml:"minInterval"`
	LevelStep   time.Duration `yaml:"levelStep"`
}

type PiecesConfig struct {
	Randomizer string `yaml:"randomizer"`
	Colors     string `yaml:"colors"`
	Seed       uint64 `yaml:"seed"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ScoresConfig struct {
	Enabled bool   `yaml:"enabled"`
	App     string `yaml:"app"`
}

// Default returns the classic 10x20 game with a fixed 500ms gravity.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  tetris.DefaultWidth,
			Height: tetris.DefaultHeight,
		},
		Gravity: GravityConfig{
			Interval:    500 * time.Millisecond,
			MinInterval: 100 * time.Millisecond,
		},
		Pieces: PiecesConfig{
			Randomizer: RandomizerUniform,
			Colors:     ColorsRandom,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Scores: ScoresConfig{
			Enabled: true,
			App:     "blockfall",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result. An
// empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFile if it exists and returns Default otherwise.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Decode parses YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func (c Config) Validate() error {
	if c.Board.Width < tetris.MinWidth {
		return fmt.Errorf("board.width must be >= %d, got %d: %w", tetris.MinWidth, c.Board.Width, ErrInvalid)
	}
	if c.Board.Height < tetris.MinHeight {
		return fmt.Errorf("board.height must be >= %d, got %d: %w", tetris.MinHeight, c.Board.Height, ErrInvalid)
	}

	if c.Gravity.Interval <= 0 {
		return fmt.Errorf("gravity.interval must be > 0, got %v: %w", c.Gravity.Interval, ErrInvalid)
	}
	if c.Gravity.MinInterval <= 0 || c.Gravity.MinInterval > c.Gravity.Interval {
		return fmt.Errorf("gravity.minInterval must be in (0, %v], got %v: %w", c.Gravity.Interval, c.Gravity.MinInterval, ErrInvalid)
	}
	if c.Gravity.LevelStep < 0 {
		return fmt.Errorf("gravity.levelStep must be >= 0, got %v: %w", c.Gravity.LevelStep, ErrInvalid)
	}

	switch c.Pieces.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("pieces.randomizer must be %q or %q, got %q: %w", RandomizerUniform, RandomizerBag, c.Pieces.Randomizer, ErrInvalid)
	}
	switch c.Pieces.Colors {
	case ColorsRandom, ColorsKind:
	default:
		return fmt.Errorf("pieces.colors must be %q or %q, got %q: %w", ColorsRandom, ColorsKind, c.Pieces.Colors, ErrInvalid)
	}

	if c.Scores.Enabled && c.Scores.App == "" {
		return fmt.Errorf("scores.app cannot be empty when scores are enabled: %w", ErrInvalid)
	}
	return nil
}

// Game converts the board and piece settings to a core game config. Every
// call builds a fresh randomizer, so two games from one Config never share
// state.
func (c Config) Game() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Width = c.Board.Width
	cfg.Height = c.Board.Height
	cfg.Seed = c.Pieces.Seed

	if c.Pieces.Randomizer == RandomizerBag {
		cfg.Randomizer = tetris.NewBag(c.Pieces.Seed)
	} else {
		cfg.Randomizer = tetris.NewUniform(c.Pieces.Seed)
	}
	if c.Pieces.Colors == ColorsKind {
		cfg.Colors = tetris.ColorByKind
	}
	return cfg
}

// GravityInterval returns the fall interval at level, shortened by LevelStep
// for every level above the first and never below MinInterval.
func (c Config) GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := c.Gravity.Interval - time.Duration(level-1)*c.Gravity.LevelStep
	return max(interval, c.Gravity.MinInterval)
}
