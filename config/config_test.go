package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Gravity.Interval)
	assert.Equal(t, config.RandomizerUniform, cfg.Pieces.Randomizer)
	assert.Equal(t, config.ColorsRandom, cfg.Pieces.Colors)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
board:
  width: 12
gravity:
  interval: 800ms
  levelStep: 50ms
pieces:
  randomizer: bag
  colors: kind
  seed: 7
audio:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 800*time.Millisecond, cfg.Gravity.Interval)
	assert.Equal(t, 100*time.Millisecond, cfg.Gravity.MinInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Gravity.LevelStep)
	assert.Equal(t, config.RandomizerBag, cfg.Pieces.Randomizer)
	assert.Equal(t, uint64(7), cfg.Pieces.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Scores.Enabled)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{name: "narrow board", yaml: "board: {width: 3}", invalid: true},
		{name: "short board", yaml: "board: {height: 1}", invalid: true},
		{name: "zero interval", yaml: "gravity: {interval: 0s}", invalid: true},
		{name: "min above interval", yaml: "gravity: {interval: 100ms, minInterval: 200ms}", invalid: true},
		{name: "negative step", yaml: "gravity: {levelStep: -1ms}", invalid: true},
		{name: "unknown randomizer", yaml: "pieces: {randomizer: fair}", invalid: true},
		{name: "unknown colors", yaml: "pieces: {colors: rainbow}", invalid: true},
		{name: "scores without app", yaml: "scores: {enabled: true, app: ''}", invalid: true},
		{name: "unknown key", yaml: "board: {depth: 3}"},
		{name: "bad duration", yaml: "gravity: {interval: soon}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, config.ErrInvalid))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  height: 24\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Board.Height)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity.LevelStep = 25 * time.Millisecond
	cfg.Pieces.Randomizer = config.RandomizerBag

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	assert.Contains(t, buf.String(), "interval: 500ms")

	got, err := config.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGame(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Width = 6
	cfg.Pieces.Randomizer = config.RandomizerBag
	cfg.Pieces.Colors = config.ColorsKind
	cfg.Pieces.Seed = 11

	game := cfg.Game()
	require.NoError(t, game.Validate())
	assert.Equal(t, 6, game.Width)
	assert.Equal(t, tetris.ColorByKind, game.Colors)
	assert.Equal(t, uint64(11), game.Seed)

	seen := make(map[tetris.Kind]bool)
	for range 7 {
		seen[game.Randomizer.Next()] = true
	}
	assert.Len(t, seen, 7)

	// A second conversion starts a fresh bag with the same seed.
	a, b := cfg.Game().Randomizer, cfg.Game().Randomizer
	for range 14 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestGravityInterval(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 500*time.Millisecond, cfg.GravityInterval(1))
	assert.Equal(t, 500*time.Millisecond, cfg.GravityInterval(9))

	cfg.Gravity.LevelStep = 100 * time.Millisecond
	assert.Equal(t, 500*time.Millisecond, cfg.GravityInterval(0))
	assert.Equal(t, 400*time.Millisecond, cfg.GravityInterval(2))
	assert.Equal(t, 100*time.Millisecond, cfg.GravityInterval(5))
	assert.Equal(t, 100*time.Millisecond, cfg.GravityInterval(30))
}
