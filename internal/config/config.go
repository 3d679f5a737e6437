package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAtoms    = 12
	DefaultDt       = 0.016
	DefaultDuration = 10.0
	DefaultFriction = 1.0
	DefaultRegion   = 500.0
	DefaultSpeed    = 40.0
)

// Bonding strategies applied when a world is built from config.
const (
	BondingNone  = "none"
	BondingChain = "chain"
	BondingFull  = "full"
)

type Config struct {
	Atoms    int          `yaml:"atoms"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Seed     int64        `yaml:"seed"`
	Friction float64      `yaml:"friction"`
	Speed    float64      `yaml:"speed"`
	Bonding  string       `yaml:"bonding"`
	Region   RegionConfig `yaml:"region"`
}

type RegionConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Atoms:    DefaultAtoms,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Friction: DefaultFriction,
		Speed:    DefaultSpeed,
		Bonding:  BondingNone,
		Region: RegionConfig{
			Width:  DefaultRegion,
			Height: DefaultRegion,
		},
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
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Atoms <= 0 {
		return fmt.Errorf("atoms must be positive, got %d", c.Atoms)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	switch c.Bonding {
	case BondingNone, BondingChain, BondingFull:
	default:
		return fmt.Errorf("unknown bonding strategy %q", c.Bonding)
	}
	return nil
}
