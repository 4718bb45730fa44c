// Package config loads the CLI configuration file: baseline timing, recorder
// backend and the debug server address.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avezina/kinetic/pkg/domain"
)

// Config is the top-level configuration document.
type Config struct {
	Baseline BaselineConfig `yaml:"baseline"`
	Recorder RecorderConfig `yaml:"recorder"`
	Listen   string         `yaml:"listen"`
}

// BaselineConfig overrides the process-wide default timing.
type BaselineConfig struct {
	Duration float64      `yaml:"duration"`
	Curve    domain.Curve `yaml:"curve"`
}

// RecorderConfig selects the timeline store backend.
type RecorderConfig struct {
	Backend string      `yaml:"backend"` // "memory" (default) or "redis"
	Trail   string      `yaml:"trail"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis timeline store.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	Prefix   string   `yaml:"prefix"`
	TTL      Duration `yaml:"ttl"`
}

// Duration is a time.Duration that parses from yaml strings like "90s" or "1h".
type Duration time.Duration

// UnmarshalYAML parses the duration string form.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return &domain.ValidationError{Field: "duration", Reason: err.Error()}
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Baseline: BaselineConfig{
			Duration: domain.BaselineDuration,
			Curve:    domain.CurveEase,
		},
		Recorder: RecorderConfig{
			Backend: "memory",
			Trail:   "default",
		},
		Listen: ":8460",
	}
}

// Load reads and validates a configuration file. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine would reject later.
func (c Config) Validate() error {
	if c.Baseline.Duration < 0 {
		return &domain.ValidationError{Field: "baseline.duration", Reason: "must be >= 0"}
	}
	switch c.Recorder.Backend {
	case "", "memory", "redis":
	default:
		return &domain.ValidationError{
			Field:  "recorder.backend",
			Reason: fmt.Sprintf("unknown backend %q (want memory or redis)", c.Recorder.Backend),
		}
	}
	if c.Recorder.Backend == "redis" && c.Recorder.Redis.Addr == "" {
		return &domain.ValidationError{Field: "recorder.redis.addr", Reason: "required for the redis backend"}
	}
	return nil
}
