// Package config handles daybook configuration parsing and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the daybook.yaml configuration file.
type Config struct {
	// DataDir holds the database file. Empty means the per-OS default.
	DataDir string `yaml:"data_dir"`
	// DatabaseFile is the file name inside DataDir.
	DatabaseFile string `yaml:"database_file"`
	// TickSeconds is the reminder scan interval.
	TickSeconds int `yaml:"tick_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:      DefaultDataDir(),
		DatabaseFile: "daybook.db",
		TickSeconds:  60,
	}
}

// Load reads the config at path, filling unset fields with defaults. An
// empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseFile == "" {
		return errors.New("config: database_file cannot be empty")
	}
	if c.TickSeconds <= 0 {
		return errors.New("config: tick_seconds must be positive")
	}
	return nil
}

// DatabasePath returns the full path of the SQLite file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// TickInterval returns TickSeconds as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds) * time.Second
}
