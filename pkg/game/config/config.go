// Package config loads game settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"darkmaze/pkg/game/generator"
)

// ErrInvalidConfig is returned for settings that cannot start a game.
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Cell size constraints for the window renderer (pixels)
const (
	MinCellSize  = 8
	MaxCellSize  = 96
	CellSizeStep = 4
)

// Environment variable names
const (
	EnvWidth      = "MAZE_WIDTH"
	EnvHeight     = "MAZE_HEIGHT"
	EnvMinRegion  = "MAZE_MIN_REGION"
	EnvSplitDepth = "MAZE_SPLIT_DEPTH"
	EnvTimeLimit  = "MAZE_TIME_LIMIT"
	EnvSeed       = "MAZE_SEED"
	EnvRenderer   = "MAZE_RENDERER"
	EnvLang       = "MAZE_LANG"
	EnvCellSize   = "MAZE_CELL_SIZE"
	EnvLocales    = "MAZE_LOCALES"
)

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// Config holds the game's settings.
type Config struct {
	Width         int           // Maze width in cells
	Height        int           // Maze height in cells
	MinRegionSize int           // Minimum BSP region size
	SplitDepth    int           // Maximum BSP split depth
	TimeLimit     time.Duration // Countdown per maze
	Seed          int64         // Master seed, 0 = time based
	Renderer      string        // "ebiten" or "tui"
	Lang          string        // Locale for translations
	LocalesDir    string        // Directory holding <lang>/default.po
	CellSize      int           // Cell size in pixels for the window renderer
	Dump          bool          // Print one maze and exit
}

// Defaults returns the built-in settings: a 15x15 maze and three minutes.
func Defaults() Config {
	return Config{
		Width:         15,
		Height:        15,
		MinRegionSize: 3,
		SplitDepth:    generator.DefaultMaxSplitDepth,
		TimeLimit:     180 * time.Second,
		Renderer:      RendererEbiten,
		Lang:          "en_GB",
		LocalesDir:    "locales",
		CellSize:      30,
	}
}

// Load builds a Config from DefaultEnvFile, the environment and args.
func Load(args []string) (Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return Config{}, err
	}

	cfg := Defaults()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvMinRegion, &c.MinRegionSize},
		{EnvSplitDepth, &c.SplitDepth},
		{EnvCellSize, &c.CellSize},
	}
	for _, v := range ints {
		if err := envInt(v.key, v.dst); err != nil {
			return err
		}
	}

	if s, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvSeed, err)
		}
		c.Seed = seed
	}

	if s, ok := os.LookupEnv(EnvTimeLimit); ok {
		d, err := parseTimeLimit(s)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTimeLimit, err)
		}
		c.TimeLimit = d
	}

	if s, ok := os.LookupEnv(EnvRenderer); ok {
		c.Renderer = s
	}
	if s, ok := os.LookupEnv(EnvLang); ok {
		c.Lang = s
	}
	if s, ok := os.LookupEnv(EnvLocales); ok {
		c.LocalesDir = s
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("darkmaze", flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "maze height in cells")
	fs.IntVar(&c.MinRegionSize, "min-region", c.MinRegionSize, "minimum BSP region size")
	fs.IntVar(&c.SplitDepth, "depth", c.SplitDepth, "maximum BSP split depth")
	fs.DurationVar(&c.TimeLimit, "time-limit", c.TimeLimit, "time allowed per maze")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer: ebiten or tui")
	fs.StringVar(&c.Lang, "lang", c.Lang, "language for messages")
	fs.StringVar(&c.LocalesDir, "locales", c.LocalesDir, "directory with translation files")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels (ebiten)")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print a generated maze and exit")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks settings that would otherwise fail later
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.TimeLimit < time.Second {
		return fmt.Errorf("%w: time limit %v is shorter than one second", ErrInvalidConfig, c.TimeLimit)
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if c.CellSize < MinCellSize || c.CellSize > MaxCellSize {
		return fmt.Errorf("%w: cell size %d outside [%d, %d]", ErrInvalidConfig, c.CellSize, MinCellSize, MaxCellSize)
	}
	return nil
}

// Params returns the maze generation parameters
func (c Config) Params() generator.Params {
	return generator.Params{
		Width:         c.Width,
		Height:        c.Height,
		MinRegionSize: c.MinRegionSize,
		MaxSplitDepth: c.SplitDepth,
	}
}

// MasterSeed returns the configured seed, or a time-based one when unset
func (c Config) MasterSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// parseTimeLimit accepts a Go duration ("3m") or a number of seconds ("180")
func parseTimeLimit(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

func envInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = v
	return nil
}
