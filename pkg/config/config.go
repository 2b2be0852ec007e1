package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/i5heu/GoContainerBench/internal/testbench"
)

// Config is an alias for testbench.Config. This allows other programs to import
// the benchmark configuration without pulling in the entire testbench package.
type Config = testbench.Config

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Sizes:      []int{1000, 10000, 100000},
		Iterations: 5,
		Duration:   time.Second,
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default value.
//
//	sizes: [1000, 50000]
//	iterations: 3
//	duration: 500ms
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a measurement.
func Validate(cfg Config) error {
	if len(cfg.Sizes) == 0 {
		return errors.New("no workload sizes")
	}
	for _, s := range cfg.Sizes {
		if s <= 0 {
			return fmt.Errorf("workload size %d must be positive", s)
		}
	}
	if cfg.Iterations <= 0 {
		return fmt.Errorf("iterations %d must be positive", cfg.Iterations)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration %s must be positive", cfg.Duration)
	}
	return nil
}
