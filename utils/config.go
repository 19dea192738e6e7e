package utils

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	ConfigFile string `json:"-"`

	Input     string        `json:"input"`
	Board     string        `json:"board"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Delay     time.Duration `json:"delay"`
	NumSteps  int           `json:"num_steps"`
	Glyphs    rules.Glyphs  `json:"glyphs"`
	CacheSize int           `json:"cache_size"`
	Status    bool          `json:"status"`
	LogLevel  slog.Level    `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Delay:     200 * time.Millisecond,
		NumSteps:  0, // run until interrupted
		Glyphs:    rules.DefaultGlyphs(),
		CacheSize: rules.DefaultCacheSize,
		LogLevel:  slog.LevelInfo,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	config.ConfigFile = filename
	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file; flags override its values")
	fs.StringVar(&c.Input, "input", c.Input, "board file, one row of 0/1 digits per line")
	fs.StringVar(&c.Input, "i", c.Input, "shorthand for -input")
	fs.StringVar(&c.Board, "board", c.Board, "inline board, rows separated by '/'")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of an all-dead board, used without -input or -board")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of an all-dead board, used without -input or -board")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between generations")
	fs.DurationVar(&c.Delay, "d", c.Delay, "shorthand for -delay")
	fs.IntVar(&c.NumSteps, "num-steps", c.NumSteps, "number of generations to run, 0 for no limit")
	fs.IntVar(&c.NumSteps, "n", c.NumSteps, "shorthand for -num-steps")
	fs.StringVar(&c.Glyphs.Live, "alive", c.Glyphs.Live, "glyph for live cells")
	fs.StringVar(&c.Glyphs.Dead, "dead", c.Glyphs.Dead, "glyph for dead cells")
	fs.IntVar(&c.CacheSize, "cache-size", c.CacheSize, "capacity of the transition cache")
	fs.BoolVar(&c.Status, "status", c.Status, "print a status line above each generation")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: DEBUG, INFO, WARN or ERROR")
}

// ParseArgs builds a Config from defaults, the optional -config file and the flags, in that order
func ParseArgs(name string, args []string) (Config, error) {
	config := DefaultConfig()
	if err := newFlagSet(name, &config).Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	if config.ConfigFile == "" {
		return config, config.Validate()
	}

	config, err := LoadConfig(config.ConfigFile)
	if err != nil {
		return config, err
	}
	// Parse again so flags take precedence over the file
	if err = newFlagSet(name, &config).Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	return config, config.Validate()
}

func newFlagSet(name string, c *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	return fs
}

// Validate reports the first problem with the configuration
func (c Config) Validate() error {
	switch {
	case c.Input == "" && c.Board == "" && (c.Rows <= 0 || c.Cols <= 0):
		return errors.Wrap(ErrInvalidConfig, "[Validate] no board: set -input, -board or -rows and -cols")
	case c.Input != "" && c.Board != "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] -input and -board are mutually exclusive")
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative delay %v", c.Delay)
	case c.NumSteps < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative num-steps %d", c.NumSteps)
	case c.Glyphs.Live == "" || c.Glyphs.Dead == "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] glyphs must not be empty")
	case c.Glyphs.Live == c.Glyphs.Dead:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive and dead glyphs are both %q", c.Glyphs.Live)
	case c.CacheSize < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cache-size %d must be positive", c.CacheSize)
	}
	return nil
}
