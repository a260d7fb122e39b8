package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-raytracer-core/pkg/core"
)

const (
	// DefaultMinT keeps secondary rays from re-hitting the surface they left
	DefaultMinT = 0.001

	// Environment variables overriding the intersection bounds
	EnvMinT = "RAYCORE_MIN_T"
	EnvMaxT = "RAYCORE_MAX_T"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// IntersectionConfig bounds the ray parameters accepted as hits
type IntersectionConfig struct {
	MinT float64 `yaml:"min_t"`
	MaxT float64 `yaml:"max_t"`
}

// Config is the root configuration structure
type Config struct {
	Intersection IntersectionConfig `yaml:"intersection"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Intersection: IntersectionConfig{
			MinT: DefaultMinT,
			MaxT: math.Inf(1),
		},
	}
}

// Load reads a YAML config on top of the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string, logger core.Logger) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Printf("Config %s not found, using defaults\n", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	logger.Printf("Loaded config from %s: interval %v\n", path, cfg.Intersection.Interval())
	return cfg, nil
}

// ApplyEnv loads the given .env files (missing ones are skipped) and then
// applies RAYCORE_* overrides from the process environment. Variables already
// set in the environment win over .env values.
func ApplyEnv(cfg *Config, logger core.Logger, envFiles ...string) error {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("loading env file %s: %w", file, err)
		}
		logger.Printf("Loaded environment from %s\n", file)
	}

	overrides := []struct {
		name   string
		target *float64
	}{
		{EnvMinT, &cfg.Intersection.MinT},
		{EnvMaxT, &cfg.Intersection.MaxT},
	}
	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok || raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", o.name, raw, err)
		}
		*o.target = value
		logger.Printf("Override %s=%g\n", o.name, value)
	}
	return nil
}

// Validate checks the configured interval is usable as a hit range
func (c *Config) Validate() error {
	ic := c.Intersection
	if math.IsNaN(ic.MinT) || math.IsNaN(ic.MaxT) {
		return fmt.Errorf("%w: intersection bounds must not be NaN", ErrInvalidConfig)
	}
	if ic.MinT >= ic.MaxT {
		return fmt.Errorf("%w: min_t %g must be below max_t %g", ErrInvalidConfig, ic.MinT, ic.MaxT)
	}
	return nil
}

// Interval returns the configured range as an open hit interval
func (ic IntersectionConfig) Interval() core.Interval {
	return core.NewInterval(ic.MinT, ic.MaxT)
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
