package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/funcalc/funcalc"
)

// Config holds the numeric defaults used by the subcommands. Values
// come from an optional TOML file and fall back to the library
// defaults.
type Config struct {
	IntegrationSteps int     `toml:"integration_steps"`
	Tolerance        float64 `toml:"tolerance"`
	MaxIterations    int     `toml:"max_iterations"`
	TabulationPoints int     `toml:"tabulation_points"`
}

func defaultConfig() Config {
	return Config{
		IntegrationSteps: funcalc.DefaultIntegrationSteps,
		Tolerance:        funcalc.DefaultTolerance,
		MaxIterations:    funcalc.DefaultMaxIterations,
		TabulationPoints: 21,
	}
}

// loadConfig reads path over the defaults. An empty path keeps the
// defaults; a missing file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.IntegrationSteps <= 0 || cfg.MaxIterations <= 0 || cfg.TabulationPoints <= 1 || cfg.Tolerance <= 0 {
		return cfg, errors.Errorf("config %s: all numeric settings must be positive (points > 1)", path)
	}
	return cfg, nil
}
