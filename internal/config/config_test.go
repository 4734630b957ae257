package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feestdagen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Year != 0 {
		t.Errorf("Year = %d, want 0", cfg.Year)
	}
	if cfg.Format != "table" {
		t.Errorf("Format = %q, want table", cfg.Format)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.GUI.Width != 650 || cfg.GUI.Height != 550 {
		t.Errorf("GUI size = %vx%v, want 650x550", cfg.GUI.Width, cfg.GUI.Height)
	}
	wantRotation := RotationConfig{MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28, Compress: true}
	if cfg.Log.Rotation != wantRotation {
		t.Errorf("Log.Rotation = %+v, want %+v", cfg.Log.Rotation, wantRotation)
	}
	if cfg.GUI.Title != "Nederlandse Christelijke Feestdagen" {
		t.Errorf("GUI.Title = %q", cfg.GUI.Title)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
year: 2025
format: ics
log:
  file: logs/feestdagen.log
  level: debug
  rotation:
    max_size_mb: 5
    compress: false
gui:
  width: 800
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GetYear() != 2025 {
		t.Errorf("GetYear() = %d, want 2025", cfg.GetYear())
	}
	if cfg.Format != "ics" {
		t.Errorf("Format = %q, want ics", cfg.Format)
	}
	if cfg.Log.File != "logs/feestdagen.log" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if r := cfg.Log.Rotation; r.MaxSizeMB != 5 || r.Compress || r.MaxBackups != 3 {
		t.Errorf("Log.Rotation = %+v, want size 5, no compression, 3 backups", r)
	}
	if cfg.GUI.Width != 800 || cfg.GUI.Height != 550 {
		t.Errorf("GUI size = %vx%v, want 800x550", cfg.GUI.Width, cfg.GUI.Height)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FEESTDAGEN_LOG_LEVEL", "warn")
	t.Setenv("FEESTDAGEN_YEAR", "1999")

	cfg, err := Load(writeConfig(t, "format: json\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Year != 1999 {
		t.Errorf("Year = %d, want 1999", cfg.Year)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"year out of range", "year: 12000\n"},
		{"unknown format", "format: xml\n"},
		{"unknown log level", "log:\n  level: verbose\n"},
		{"zero rotation size", "log:\n  rotation:\n    max_size_mb: 0\n"},
		{"negative backups", "log:\n  rotation:\n    max_backups: -1\n"},
		{"zero window", "gui:\n  width: 0\n"},
		{"broken yaml", "year: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load() expected error for %q, got nil", tt.content)
			}
		})
	}
}

func TestGetYear_DefaultsToCurrentYear(t *testing.T) {
	cfg := &Config{}
	if cfg.GetYear() < 2024 {
		t.Errorf("GetYear() = %d, want current year", cfg.GetYear())
	}
}
