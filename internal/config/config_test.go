package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.WeekStart() != time.Monday {
		t.Errorf("WeekStart = %v, want Monday", cfg.WeekStart())
	}
	if cfg.HourHeight != 60 {
		t.Errorf("HourHeight = %v, want 60", cfg.HourHeight)
	}
	if cfg.MinHourHeight != 20 || cfg.MaxHourHeight != 120 {
		t.Errorf("zoom bounds = [%v, %v], want [20, 120]", cfg.MinHourHeight, cfg.MaxHourHeight)
	}
	if cfg.BufferWeeks != 2 {
		t.Errorf("BufferWeeks = %d, want 2", cfg.BufferWeeks)
	}
	if cfg.TotalSections != 10001 {
		t.Errorf("TotalSections = %d, want 10001", cfg.TotalSections)
	}
	if cfg.MiddleSection() != 5000 {
		t.Errorf("MiddleSection = %d, want 5000", cfg.MiddleSection())
	}
	if cfg.GetRefreshInterval() != time.Minute {
		t.Errorf("GetRefreshInterval = %v, want 1m", cfg.GetRefreshInterval())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `week_starts_on_monday: false
hour_height: 80
events_file: /tmp/cal.json
refresh_interval: 30s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.WeekStart() != time.Sunday {
		t.Errorf("WeekStart = %v, want Sunday", cfg.WeekStart())
	}
	if cfg.HourHeight != 80 {
		t.Errorf("HourHeight = %v, want 80", cfg.HourHeight)
	}
	if cfg.EventsFile != "/tmp/cal.json" {
		t.Errorf("EventsFile = %q", cfg.EventsFile)
	}
	if cfg.GetRefreshInterval() != 30*time.Second {
		t.Errorf("GetRefreshInterval = %v, want 30s", cfg.GetRefreshInterval())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicitly named missing file must fail")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		HourHeight:    60,
		MinHourHeight: 20,
		MaxHourHeight: 120,
		BufferWeeks:   2,
		TotalSections: 10001,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min height", func(c *Config) { c.MinHourHeight = 0 }},
		{"max below min", func(c *Config) { c.MaxHourHeight = 10 }},
		{"default outside bounds", func(c *Config) { c.HourHeight = 200 }},
		{"negative buffer", func(c *Config) { c.BufferWeeks = -1 }},
		{"no sections", func(c *Config) { c.TotalSections = 0 }},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("base config should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetRefreshIntervalFallback(t *testing.T) {
	for _, value := range []string{"", "garbage", "-5s", "0s"} {
		cfg := Config{RefreshInterval: value}
		if got := cfg.GetRefreshInterval(); got != time.Minute {
			t.Errorf("GetRefreshInterval(%q) = %v, want 1m", value, got)
		}
	}
}
