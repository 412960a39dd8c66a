package heatbugs

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate for every rejected configuration.
var ErrInvalidConfig = errors.New("heatbugs: invalid config")

// Params holds the thermal and comfort constants for a run.
type Params struct {
	Decay     float64 `yaml:"decay"`
	Diffusion float64 `yaml:"diffusion"`

	BugHeat  float64 `yaml:"bug_heat"`
	BugMin   float64 `yaml:"bug_min"`
	BugMax   float64 `yaml:"bug_max"`
	BugCount int     `yaml:"bug_count"`

	InitTempMin float64 `yaml:"init_temp_min"`
	InitTempMax float64 `yaml:"init_temp_max"`
}

// Config controls the heat bug world dimensions and constants.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	// Workers splits the diffusion pass into row bands. Values below 2 run serially.
	Workers int `yaml:"workers"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   25,
		Height:  25,
		Seed:    1337,
		Workers: 1,
		Params: Params{
			Decay:       0.01,
			Diffusion:   0.1,
			BugHeat:     2.5,
			BugMin:      10,
			BugMax:      15,
			BugCount:    30,
			InitTempMin: 0,
			InitTempMax: 5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyOverrides(DefaultConfig(), cfg)
}

// ApplyOverrides applies flag-style key/value pairs on top of c.
func ApplyOverrides(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Decay = parsed
		}
	}
	if v, ok := cfg["diffusion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Diffusion = parsed
		}
	}
	if v, ok := cfg["bug_heat"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BugHeat = parsed
		}
	}
	if v, ok := cfg["bug_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BugMin = parsed
		}
	}
	if v, ok := cfg["bug_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BugMax = parsed
		}
	}
	if c.Params.BugMax < c.Params.BugMin {
		c.Params.BugMax = c.Params.BugMin
	}
	if v, ok := cfg["bug_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BugCount = parsed
		}
	}
	if v, ok := cfg["init_temp_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.InitTempMin = parsed
		}
	}
	if v, ok := cfg["init_temp_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.InitTempMax = parsed
		}
	}
	if c.Params.InitTempMax < c.Params.InitTempMin {
		c.Params.InitTempMax = c.Params.InitTempMin
	}
	return c
}

// Validate reports whether the config describes a runnable world.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.Params.Decay < 0 || c.Params.Diffusion < 0:
		return fmt.Errorf("%w: decay %g and diffusion %g must be non-negative", ErrInvalidConfig, c.Params.Decay, c.Params.Diffusion)
	case c.Params.BugMin > c.Params.BugMax:
		return fmt.Errorf("%w: comfort band [%g, %g] is empty", ErrInvalidConfig, c.Params.BugMin, c.Params.BugMax)
	case c.Params.BugCount < 0:
		return fmt.Errorf("%w: bug count %d is negative", ErrInvalidConfig, c.Params.BugCount)
	case c.Params.InitTempMin > c.Params.InitTempMax:
		return fmt.Errorf("%w: initial temperature range [%g, %g) is empty", ErrInvalidConfig, c.Params.InitTempMin, c.Params.InitTempMax)
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOver(DefaultConfig(), path)
}

// LoadConfigOver reads a YAML configuration file on top of base, so keys the
// file omits keep the values from base.
func LoadConfigOver(base Config, path string) (Config, error) {
	c := base
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
