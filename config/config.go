// Package config loads runner settings and recorded answers from a YAML
// file, then applies AOC_* environment overrides.
//
// Precedence, lowest first: built-in defaults, the YAML file, environment
// variables, command-line flags (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrInvalidConfig indicates a config file or environment value that
// cannot be decoded or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is the config file read when none is given.
const DefaultPath = "aoc.yaml"

// Answers holds the known answers for one day. A nil part is not checked.
type Answers struct {
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

// Config is the resolved configuration.
type Config struct {
	InputDir     string          `yaml:"input_dir" env:"AOC_INPUT_DIR"`
	InputPattern string          `yaml:"input_pattern" env:"AOC_INPUT_PATTERN"`
	Debug        bool            `yaml:"debug" env:"AOC_DEBUG"`
	Answers      map[int]Answers `yaml:"answers"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir:     puzzle.DefaultInputDir,
		InputPattern: puzzle.DefaultInputPattern,
		Answers:      map[int]Answers{},
	}
}

// Load reads path (a missing file leaves the defaults), then applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := decode(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode unmarshals YAML strictly: unknown keys are rejected.
func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if cfg.Answers == nil {
		cfg.Answers = map[int]Answers{}
	}

	return nil
}

// Validate checks answer days and the input pattern.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	}
	if !strings.Contains(c.InputPattern, "%") {
		return fmt.Errorf("%w: input_pattern %q has no day verb", ErrInvalidConfig, c.InputPattern)
	}
	for day := range c.Answers {
		if day < puzzle.FirstDay || day > puzzle.LastDay {
			return fmt.Errorf("%w: answers for day %d", ErrInvalidConfig, day)
		}
	}

	return nil
}

// RunnerOptions translates c into puzzle.Runner options.
func (c Config) RunnerOptions() []puzzle.Option {
	return []puzzle.Option{
		puzzle.WithInputDir(c.InputDir),
		puzzle.WithInputPattern(c.InputPattern),
	}
}
