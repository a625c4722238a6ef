// Package config loads the widget configuration: week-start convention,
// hour-pixel zoom bounds, cache buffer width, and the demo shell's event
// file and refresh settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the read-only record supplied once at construction.
type Config struct {
	// Engine settings.
	WeekStartsOnMonday bool    `mapstructure:"week_starts_on_monday"`
	HourHeight         float64 `mapstructure:"hour_height"`
	MinHourHeight      float64 `mapstructure:"min_hour_height"`
	MaxHourHeight      float64 `mapstructure:"max_hour_height"`
	BufferWeeks        int     `mapstructure:"buffer_weeks"`
	TotalSections      int     `mapstructure:"total_sections"`

	// Shell settings.
	EventsFile      string `mapstructure:"events_file"`
	RefreshInterval string `mapstructure:"refresh_interval"`
	LogLevel        string `mapstructure:"log_level"`
}

// Load reads configuration from the given file, or from the default search
// paths when path is empty. A missing config file is not an error; defaults
// apply. Environment variables prefixed DAYGRID_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("week_starts_on_monday", true)
	v.SetDefault("hour_height", 60.0)
	v.SetDefault("min_hour_height", 20.0)
	v.SetDefault("max_hour_height", 120.0)
	v.SetDefault("buffer_weeks", 2)
	v.SetDefault("total_sections", 10001)
	v.SetDefault("events_file", "events.json")
	v.SetDefault("refresh_interval", "60s")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/daygrid")
	}

	v.SetEnvPrefix("DAYGRID")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the zoom bounds and window sizes.
func (c *Config) Validate() error {
	if c.MinHourHeight <= 0 {
		return fmt.Errorf("min_hour_height must be positive")
	}
	if c.MaxHourHeight < c.MinHourHeight {
		return fmt.Errorf("max_hour_height must be >= min_hour_height")
	}
	if c.HourHeight < c.MinHourHeight || c.HourHeight > c.MaxHourHeight {
		return fmt.Errorf("hour_height %.0f outside [%.0f, %.0f]",
			c.HourHeight, c.MinHourHeight, c.MaxHourHeight)
	}
	if c.BufferWeeks < 0 {
		return fmt.Errorf("buffer_weeks must not be negative")
	}
	if c.TotalSections <= 0 {
		return fmt.Errorf("total_sections must be positive")
	}
	return nil
}

// WeekStart returns the configured week-start day.
func (c *Config) WeekStart() time.Weekday {
	if c.WeekStartsOnMonday {
		return time.Monday
	}
	return time.Sunday
}

// MiddleSection returns the virtual axis anchor index.
func (c *Config) MiddleSection() int {
	return c.TotalSections / 2
}

// GetRefreshInterval returns the now-marker refresh period, defaulting to
// one minute on empty or malformed input.
func (c *Config) GetRefreshInterval() time.Duration {
	if c.RefreshInterval == "" {
		return time.Minute
	}
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}
