package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the world generation settings.
type Config struct {
	Seed      int64  `json:"seed"`
	Generator string `json:"generator"` // "default" or "flat"
	Radius    int    `json:"radius"`    // region half-width in chunks
	YMin      int    `json:"y_min"`     // lowest chunk Y generated
	YMax      int    `json:"y_max"`     // highest chunk Y generated
	Workers   int    `json:"workers"`   // 0 = one per CPU
	MapOut    string `json:"map_out"`   // biome map PNG path, "" = no render
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:      0,
		Generator: "default",
		Radius:    4,
		YMin:      0,
		YMax:      1,
		Workers:   0,
	}
}

// Load reads a JSON config file into a fresh Config. A missing file is an
// error; callers that treat the file as optional should check for existence
// first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["y-min"] {
		cfg.YMin = fromFile.YMin
	}
	if !explicitFlags["y-max"] {
		cfg.YMax = fromFile.YMax
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["map"] {
		cfg.MapOut = fromFile.MapOut
	}
}
