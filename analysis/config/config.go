// Package config holds the user-facing configuration of fixpoint
// computations. Configuration is loaded from YAML files; fields not
// defined in the file keep their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/seml-dk/ibex/analysis/fixpoint"

	"gopkg.in/yaml.v3"
)

// Working set policies accepted in configuration files.
const (
	WorkingSetFIFO     = "fifo"
	WorkingSetLIFO     = "lifo"
	WorkingSetPriority = "priority"
)

// Config drives how a client sets up its fixpoint computations.
type Config struct {
	// WidenAfter is the number of per-node iterations after which joins
	// are replaced with widenings. 0 disables widening.
	WidenAfter int `yaml:"widen-after"`

	// WorkingSet selects the node processing order: fifo, lifo or
	// priority (reverse postorder).
	WorkingSet string `yaml:"working-set"`

	// Verbose enables diagnostic logging of the computation.
	Verbose bool `yaml:"verbose"`

	// Visualize is the path prefix for dot renderings of analyzed graphs.
	// Empty disables visualization.
	Visualize string `yaml:"visualize"`
}

// Default returns the configuration used in absence of a config file.
func Default() *Config {
	return &Config{
		WidenAfter: fixpoint.DefaultWideningThreshold,
		WorkingSet: WorkingSetFIFO,
	}
}

// Load reads and validates a configuration file.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", filename, err)
	}
	cfg, err := LoadBytes(b)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadBytes parses and validates configuration data.
func LoadBytes(b []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.WidenAfter < 0 {
		return fmt.Errorf("widen-after must be non-negative, got %d", c.WidenAfter)
	}
	switch c.WorkingSet {
	case WorkingSetFIFO, WorkingSetLIFO, WorkingSetPriority:
		return nil
	default:
		return fmt.Errorf("unknown working-set policy %q", c.WorkingSet)
	}
}
