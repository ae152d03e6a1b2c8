// SPDX-License-Identifier: MIT
// Package: axiomic/config
//
// config.go: YAML configuration for the calculator front-ends.
//
// Contract:
//   • Load("") returns Default(); keys missing from a file keep their defaults.
//   • Unknown keys and out-of-range values are ErrInvalidConfig.
//   • Every returned error names the file it came from.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/axiomic/primes"
	"github.com/katalvlaran/axiomic/render"
)

var (
	// ErrConfigNotFound indicates the config file could not be read.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidConfig indicates the file is not valid YAML or holds bad values.
	ErrInvalidConfig = errors.New("config: invalid config")
)

const (
	// MaxChartWidth caps chart.width.
	MaxChartWidth = 200

	// MaxPrimeRangeCeiling caps limits.max_prime_range; the sieve allocates
	// one byte per integer up to the limit.
	MaxPrimeRangeCeiling int64 = 100_000_000
)

// Config is the root of the YAML document.
type Config struct {
	Limits Limits `yaml:"limits"`
	Log    Log    `yaml:"log"`
	Chart  Chart  `yaml:"chart"`
}

// Limits mirrors the bounds of package primes.
type Limits struct {
	MaxPrimeRange     int64 `yaml:"max_prime_range"`
	MaxNextPrimeStart int64 `yaml:"max_next_prime_start"`
	MaxNthPrime       int   `yaml:"max_nth_prime"`
	MaxFactorInput    int64 `yaml:"max_factor_input"`
	MaxGoldbach       int64 `yaml:"max_goldbach"`
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level"`
}

// Chart configures render.BarChart.
type Chart struct {
	Width int `yaml:"width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: Limits{
			MaxPrimeRange:     primes.DefaultMaxPrimeRange,
			MaxNextPrimeStart: primes.DefaultMaxNextPrimeStart,
			MaxNthPrime:       primes.DefaultMaxNthPrime,
			MaxFactorInput:    primes.DefaultMaxFactorInput,
			MaxGoldbach:       primes.DefaultMaxGoldbach,
		},
		Log:   Log{Level: "info"},
		Chart: Chart{Width: render.DefaultChartWidth},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range value as ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Limits.MaxPrimeRange < 0 || c.Limits.MaxPrimeRange > MaxPrimeRangeCeiling:
		return invalid("limits.max_prime_range", fmt.Sprintf("must be in [0, %d]", MaxPrimeRangeCeiling))
	case c.Limits.MaxNextPrimeStart < 0:
		return invalid("limits.max_next_prime_start", "must be ≥ 0")
	case c.Limits.MaxNthPrime < 0:
		return invalid("limits.max_nth_prime", "must be ≥ 0")
	case c.Limits.MaxFactorInput < 0:
		return invalid("limits.max_factor_input", "must be ≥ 0")
	case c.Limits.MaxGoldbach < 0:
		return invalid("limits.max_goldbach", "must be ≥ 0")
	case c.Chart.Width < 1 || c.Chart.Width > MaxChartWidth:
		return invalid("chart.width", fmt.Sprintf("must be in [1, %d]", MaxChartWidth))
	}
	if _, err := c.ZapLevel(); err != nil {
		return invalid("log.level", err.Error())
	}

	return nil
}

func invalid(field, why string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, why)
}

// ZapLevel parses log.level ("debug", "info", "warn", "error").
func (c Config) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

// PrimeOptions converts the limits into primes options.
func (c Config) PrimeOptions() []primes.Option {
	return []primes.Option{
		primes.WithMaxPrimeRange(c.Limits.MaxPrimeRange),
		primes.WithMaxNextPrimeStart(c.Limits.MaxNextPrimeStart),
		primes.WithMaxNthPrime(c.Limits.MaxNthPrime),
		primes.WithMaxFactorInput(c.Limits.MaxFactorInput),
		primes.WithMaxGoldbach(c.Limits.MaxGoldbach),
	}
}

// ChartOptions converts the chart section into render options.
func (c Config) ChartOptions() []render.ChartOption {
	return []render.ChartOption{render.WithWidth(c.Chart.Width)}
}
