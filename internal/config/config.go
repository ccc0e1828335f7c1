// Package config loads the quadrille CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadrille/polyomino"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level structure of quadrille.yaml.
type Config struct {
	// Board sizes the board pieces are glued onto.
	Board BoardConfig `yaml:"board"`
	// Generate configures polyomino generation requests.
	Generate GenerateConfig `yaml:"generate"`
	// Logging configures the slog handler.
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig sizes the board.
type BoardConfig struct {
	// Rows is the number of board rows.
	Rows int `yaml:"rows"`
	// Cols is the number of board columns.
	Cols int `yaml:"cols"`
	// Edge is the cell edge length handed to renderers, in terminal columns.
	Edge int `yaml:"edge"`
}

// GenerateConfig configures polyomino generation.
type GenerateConfig struct {
	// Size is the number of squares per piece.
	Size int `yaml:"size"`
	// Filler is a glyph ("🙈") or a colour ("#00ffff") stamped into pieces.
	Filler string `yaml:"filler"`
	// Seed makes sampling reproducible; 0 uses the clock.
	Seed int64 `yaml:"seed"`
	// Mode is "exhaustion" or "stall".
	Mode string `yaml:"mode"`
	// PollInterval is the stall mode step period (e.g. "1ms").
	PollInterval string `yaml:"poll_interval"`
	// StallWindow is the stall mode sampling period (e.g. "20ms").
	StallWindow string `yaml:"stall_window"`
	// BatchSize is the number of steps per poll tick in stall mode.
	BatchSize int `yaml:"batch_size"`
	// Timeout bounds one generation request (e.g. "30s"); empty means none.
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path; empty logs to stderr.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given: the
// 20×10 board and hexomino pieces.
func Default() *Config {
	c := &Config{}
	ApplyDefaults(c)
	return c
}

// Load reads and parses path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyDefaults(&c)
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills zero values.
func ApplyDefaults(c *Config) {
	if c.Board.Rows == 0 {
		c.Board.Rows = 20
	}
	if c.Board.Cols == 0 {
		c.Board.Cols = 10
	}
	if c.Board.Edge == 0 {
		c.Board.Edge = 2
	}
	if c.Generate.Size == 0 {
		c.Generate.Size = 6
	}
	if c.Generate.Mode == "" {
		c.Generate.Mode = polyomino.ConvergeExhaustion.String()
	}
	if c.Generate.PollInterval == "" {
		c.Generate.PollInterval = "1ms"
	}
	if c.Generate.StallWindow == "" {
		c.Generate.StallWindow = "20ms"
	}
	if c.Generate.BatchSize == 0 {
		c.Generate.BatchSize = 64
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for semantic errors.
func Validate(c *Config) error {
	var problems []string
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		problems = append(problems, fmt.Sprintf("board must be at least 1×1, got %d×%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Board.Edge < 1 {
		problems = append(problems, fmt.Sprintf("board.edge must be positive, got %d", c.Board.Edge))
	}
	if c.Generate.Size < 1 {
		problems = append(problems, fmt.Sprintf("generate.size must be positive, got %d", c.Generate.Size))
	}
	if _, ok := polyomino.ParseConvergence(c.Generate.Mode); !ok {
		problems = append(problems, fmt.Sprintf("generate.mode must be exhaustion or stall, got %q", c.Generate.Mode))
	}
	for name, v := range map[string]string{
		"generate.poll_interval": c.Generate.PollInterval,
		"generate.stall_window":  c.Generate.StallWindow,
		"generate.timeout":       c.Generate.Timeout,
	} {
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err != nil || d < 0 {
			problems = append(problems, fmt.Sprintf("%s: invalid duration %q", name, v))
		}
	}
	if c.Generate.BatchSize < 1 {
		problems = append(problems, fmt.Sprintf("generate.batch_size must be positive, got %d", c.Generate.BatchSize))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Options converts the generate section into polyomino options.
// The configuration must have passed Validate.
func (g GenerateConfig) Options() []polyomino.Option {
	mode, _ := polyomino.ParseConvergence(g.Mode)
	poll, _ := time.ParseDuration(g.PollInterval)
	window, _ := time.ParseDuration(g.StallWindow)
	return []polyomino.Option{
		polyomino.WithConvergence(mode),
		polyomino.WithStallTiming(poll, window),
		polyomino.WithBatchSize(g.BatchSize),
		polyomino.WithSeed(g.Seed),
	}
}

// TimeoutDuration returns the parsed timeout, 0 meaning none.
func (g GenerateConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(g.Timeout)
	return d
}
