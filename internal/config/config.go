package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Reference decay: a Z-boson-like mother at rest decaying to two light
// daughters.
const (
	DefaultM0 = 91.0
	DefaultP0 = 0.0
	DefaultM1 = 0.1
	DefaultM2 = 0.1
)

// Config describes one decay computation: the mother's rest mass and
// lab momentum and both daughters' rest masses, in GeV.
type Config struct {
	Label string  `yaml:"label"`
	M0    float64 `yaml:"m0"`
	P0    float64 `yaml:"p0"`
	M1    float64 `yaml:"m1"`
	M2    float64 `yaml:"m2"`
}

func DefaultConfig() *Config {
	return &Config{
		Label: "z-like",
		M0:    DefaultM0,
		P0:    DefaultP0,
		M1:    DefaultM1,
		M2:    DefaultM2,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate rejects parameter sets the kinematics core would refuse
// anyway, so a bad config file fails at load time with a file-level
// message instead of deep inside a command.
func (c *Config) Validate() error {
	if c.M0 < 0 || c.M1 < 0 || c.M2 < 0 {
		return fmt.Errorf("config: masses must be non-negative (m0=%g m1=%g m2=%g)", c.M0, c.M1, c.M2)
	}
	if c.P0 < 0 {
		return fmt.Errorf("config: p0 must be non-negative (p0=%g)", c.P0)
	}
	if c.M0 < c.M1+c.M2 {
		return fmt.Errorf("config: forbidden decay, m0=%g < m1+m2=%g", c.M0, c.M1+c.M2)
	}
	return nil
}
