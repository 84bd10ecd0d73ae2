// Package config loads CLI defaults for pathsig from YAML, .env files and
// PATHSIG_* environment variables. Precedence: defaults < file < env < flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLevel  = 3
	DefaultWindow = 20
	DefaultKind   = "walk"
	DefaultDim    = 2
	DefaultLength = 200
	DefaultSeed   = 1
)

// Environment variable names consulted by ApplyEnv.
const (
	EnvLevel       = "PATHSIG_LEVEL"
	EnvWindow      = "PATHSIG_WINDOW"
	EnvTimeAugment = "PATHSIG_TIME_AUGMENT"
	EnvResync      = "PATHSIG_RESYNC"
)

// ErrInvalid is returned by Validate and by ApplyEnv on malformed values.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Level       int             `yaml:"level"`
	Window      int             `yaml:"window"`
	TimeAugment bool            `yaml:"time_augment"`
	Resync      int             `yaml:"resync"`
	Generator   GeneratorConfig `yaml:"generator"`
}

type GeneratorConfig struct {
	Kind   string `yaml:"kind"`
	Dim    int    `yaml:"dim"`
	Length int    `yaml:"length"`
	Seed   int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:  DefaultLevel,
		Window: DefaultWindow,
		Generator: GeneratorConfig{
			Kind:   DefaultKind,
			Dim:    DefaultDim,
			Length: DefaultLength,
			Seed:   DefaultSeed,
		},
	}
}

// Load reads a YAML file over DefaultConfig. Keys absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnv loads KEY=VALUE pairs from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from PATHSIG_* variables using lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvLevel, &c.Level},
		{EnvWindow, &c.Window},
		{EnvResync, &c.Resync},
	}
	for _, it := range ints {
		v, ok := lookup(it.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", it.key, v, ErrInvalid)
		}
		*it.dst = n
	}
	if v, ok := lookup(EnvTimeAugment); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTimeAugment, v, ErrInvalid)
		}
		c.TimeAugment = b
	}
	return nil
}

// Validate checks ranges the library would otherwise reject later with a
// less helpful message.
func (c *Config) Validate() error {
	switch {
	case c.Level < 1:
		return fmt.Errorf("level %d: %w", c.Level, ErrInvalid)
	case c.Window < 2:
		return fmt.Errorf("window %d: %w", c.Window, ErrInvalid)
	case c.Resync < 0:
		return fmt.Errorf("resync %d: %w", c.Resync, ErrInvalid)
	case c.Generator.Dim < 1 || c.Generator.Length < 1:
		return fmt.Errorf("generator %dx%d: %w", c.Generator.Dim, c.Generator.Length, ErrInvalid)
	}
	switch c.Generator.Kind {
	case "walk", "chirp", "gbm":
	default:
		return fmt.Errorf("generator kind %q: %w", c.Generator.Kind, ErrInvalid)
	}
	return nil
}
