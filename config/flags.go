package config

import (
	"flag"
	"time"
)

// Flags are the command-line overrides shared by the frontends. Only flags
// given on the command line replace file values.
type Flags struct {
	fs *flag.FlagSet

	Path       string
	width      int
	height     int
	interval   time.Duration
	levelStep  time.Duration
	randomizer string
	colors     string
	seed       uint64
	noAudio    bool
	noScores   bool
}

// RegisterFlags defines the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVar(&f.Path, "config", "", "YAML config file. Defaults to "+DefaultFile+" when present.")
	fs.IntVar(&f.width, "width", d.Board.Width, "Board width in cells.")
	fs.IntVar(&f.height, "height", d.Board.Height, "Board height in cells.")
	fs.DurationVar(&f.interval, "gravity", d.Gravity.Interval, "Time between gravity ticks at level 1.")
	fs.DurationVar(&f.levelStep, "level-step", d.Gravity.LevelStep, "Gravity speed-up per level.")
	fs.StringVar(&f.randomizer, "randomizer", d.Pieces.Randomizer, "Piece randomizer: uniform or bag.")
	fs.StringVar(&f.colors, "colors", d.Pieces.Colors, "Piece colors: random or kind.")
	fs.Uint64Var(&f.seed, "seed", d.Pieces.Seed, "Random seed; 0 uses the clock.")
	fs.BoolVar(&f.noAudio, "no-audio", false, "Disable sound.")
	fs.BoolVar(&f.noScores, "no-scores", false, "Do not read or save high scores.")
	return f
}

// Load reads the config file named by -config, or DefaultFile, and applies
// the flags that were set.
func (f *Flags) Load() (Config, error) {
	var (
		cfg Config
		err error
	)
	if f.Path != "" {
		cfg, err = Load(f.Path)
	} else {
		cfg, err = LoadDefault()
	}
	if err != nil {
		return Config{}, err
	}

	f.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply copies the explicitly set flags into cfg.
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Board.Width = f.width
		case "height":
			cfg.Board.Height = f.height
		case "gravity":
			cfg.Gravity.Interval = f.interval
			cfg.Gravity.MinInterval = min(cfg.Gravity.MinInterval, f.interval)
		case "level-step":
			cfg.Gravity.LevelStep = f.levelStep
		case "randomizer":
			cfg.Pieces.Randomizer = f.randomizer
		case "colors":
			cfg.Pieces.Colors = f.colors
		case "seed":
			cfg.Pieces.Seed = f.seed
		case "no-audio":
			cfg.Audio.Enabled = !f.noAudio
		case "no-scores":
			cfg.Scores.Enabled = !f.noScores
		}
	})
}
