// Package config loads the chart configuration file (chart.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/models"
)

const (
	EnvStartMonth   = "GANTT_START_MONTH"
	EnvEndMonth     = "GANTT_END_MONTH"
	EnvDBConnection = "GANTT_DB_CONNECTION"
)

type Config struct {
	StartMonth string    `yaml:"start_month"`
	EndMonth   string    `yaml:"end_month"`
	Today      string    `yaml:"today,omitempty"`
	Database   string    `yaml:"database,omitempty"`
	Log        LogConfig `yaml:"log"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.StartMonth == "" {
		c.StartMonth = constants.DefaultStartMonth
	}
	if c.EndMonth == "" {
		c.EndMonth = constants.DefaultEndMonth
	}
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv
// outside of tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvStartMonth); ok && v != "" {
		c.StartMonth = v
	}
	if v, ok := lookup(EnvEndMonth); ok && v != "" {
		c.EndMonth = v
	}
	if v, ok := lookup(EnvDBConnection); ok && v != "" {
		c.Database = v
	}
}

// Load reads path, falling back to defaults when the file does not exist,
// and applies environment overrides.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read chart config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse chart config %s: %w", path, err)
		}
	}
	c.ApplyDefaults()
	c.ApplyEnv(os.LookupEnv)
	return &c, nil
}

// Save writes c to path, creating the parent directory.
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write chart config: %w", err)
	}
	return nil
}

// Range parses the configured start and end months. Ordering is checked by
// calendar.Build.
func (c *Config) Range() (start, end models.YearMonth, err error) {
	start, err = models.ParseYearMonth(c.StartMonth)
	if err != nil {
		return start, end, fmt.Errorf("start_month: %w", err)
	}
	end, err = models.ParseYearMonth(c.EndMonth)
	if err != nil {
		return start, end, fmt.Errorf("end_month: %w", err)
	}
	return start, end, nil
}

// TodayDate returns the configured today override, or now's date.
func (c *Config) TodayDate(now time.Time) (time.Time, error) {
	if c.Today == "" {
		return models.Day(now), nil
	}
	d, err := models.ParseDate(c.Today)
	if err != nil {
		return time.Time{}, fmt.Errorf("today: %w", err)
	}
	return d, nil
}
