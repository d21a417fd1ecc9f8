package config

import (
	"github.com/kbukum/fixmap/fixture"
	"github.com/kbukum/fixmap/logger"
	"github.com/kbukum/fixmap/mapping"
)

// Config is the suite-level fixmap configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	// Mappings declares named literal-only basis mappings. Factories
	// cannot be expressed in configuration; declared values resolve as
	// literals.
	Mappings map[string]map[string]any `yaml:"mappings" mapstructure:"mappings"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Logging.Validate()
}

// RegisterMappings registers each configured mapping as a literal-only
// fixture definition in the given registry.
func RegisterMappings(reg *fixture.Registry, cfg *Config) error {
	for name, values := range cfg.Mappings {
		m := make(mapping.Basis[string], len(values))
		for k, v := range values {
			m[k] = v
		}
		if _, err := fixture.RegisterIn(reg, name, m, fixture.Options{}); err != nil {
			return err
		}
	}
	return nil
}
