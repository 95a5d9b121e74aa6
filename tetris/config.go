package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration error returned from
// NewBoard and New.
var ErrInvalidConfig = errors.New("invalid game config")

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	// MinWidth fits a horizontal I piece.
	MinWidth  = 4
	MinHeight = 2
)

// ColorMode selects the marker a freshly spawned piece carries.
type ColorMode uint8

const (
	// ColorRandom draws a uniformly random color per piece.
	ColorRandom ColorMode = iota
	// ColorByKind uses the tetromino's default color.
	ColorByKind
)

func (m ColorMode) String() string {
	switch m {
	case ColorRandom:
		return "random"
	case ColorByKind:
		return "kind"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}

// Config is the immutable setup of one game.
type Config struct {
	Width  int
	Height int

	// Randomizer picks the kind of each spawned piece. Nil means a uniform
	// randomizer seeded with Seed.
	Randomizer Randomizer
	Colors     ColorMode

	// Seed drives the default randomizer and random colors. Zero picks a
	// time-based seed.
	Seed uint64

	// Listener, if set, receives every game event synchronously.
	Listener func(Event)
}

// DefaultConfig returns a 10x20 game with uniform pieces and random colors.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate checks dimensions and enum values.
func (c Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("width %d below %d: %w", c.Width, MinWidth, ErrInvalidConfig)
	}
	if c.Height < MinHeight {
		return fmt.Errorf("height %d below %d: %w", c.Height, MinHeight, ErrInvalidConfig)
	}
	if c.Colors > ColorByKind {
		return fmt.Errorf("color mode %v: %w", c.Colors, ErrInvalidConfig)
	}
	return nil
}
