package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputDir != "." {
		t.Errorf("Default().OutputDir = %q, want %q", cfg.OutputDir, ".")
	}

	if cfg.DataDir != "~/.local/share/pokecollect" {
		t.Errorf("Default().DataDir = %q, want %q", cfg.DataDir, "~/.local/share/pokecollect")
	}

	if cfg.Format != "text" {
		t.Errorf("Default().Format = %q, want %q", cfg.Format, "text")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Default().LogLevel = %q, want %q", cfg.LogLevel, "info")
	}

	if !cfg.AnnounceDryRun {
		t.Error("Default().AnnounceDryRun = false, want true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got error: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() with missing file error = %v, want nil", err)
	}

	// Missing file falls back to defaults
	if cfg.Format != "text" || cfg.OutputDir != "." {
		t.Errorf("Load() with missing file = %+v, want defaults", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.OutputDir = "/tmp/scrapes"
	cfg.Format = "json"
	cfg.LogLevel = "debug"
	cfg.UserAgent = "custom-agent/2.0"
	cfg.AnnounceDryRun = false

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.OutputDir != cfg.OutputDir {
		t.Errorf("OutputDir = %q, want %q", loaded.OutputDir, cfg.OutputDir)
	}
	if loaded.Format != cfg.Format {
		t.Errorf("Format = %q, want %q", loaded.Format, cfg.Format)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, cfg.LogLevel)
	}
	if loaded.UserAgent != cfg.UserAgent {
		t.Errorf("UserAgent = %q, want %q", loaded.UserAgent, cfg.UserAgent)
	}
	if loaded.AnnounceDryRun {
		t.Error("AnnounceDryRun = true, want false")
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		wantErr  string
		check    func(t *testing.T, cfg *Config)
	}{
		{
			name:     "partial file keeps defaults",
			jsonData: `{"format":"json"}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Format != "json" {
					t.Errorf("Format = %q, want %q", cfg.Format, "json")
				}
				if cfg.DataDir != "~/.local/share/pokecollect" {
					t.Errorf("DataDir = %q, want default", cfg.DataDir)
				}
				if !cfg.AnnounceDryRun {
					t.Error("AnnounceDryRun should keep its default of true")
				}
			},
		},
		{
			name:     "explicit false overrides default",
			jsonData: `{"announce_dry_run":false}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.AnnounceDryRun {
					t.Error("AnnounceDryRun = true, want false")
				}
			},
		},
		{
			name:     "unknown format rejected",
			jsonData: `{"format":"xml"}`,
			wantErr:  "invalid format",
		},
		{
			name:     "unknown log level rejected",
			jsonData: `{"log_level":"loud"}`,
			wantErr:  "invalid log level",
		},
		{
			name:     "malformed JSON rejected",
			jsonData: `{not json`,
			wantErr:  "unmarshaling config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromJSON([]byte(tt.jsonData))

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("FromJSON() error = nil, want containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("FromJSON() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("FromJSON() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSave_DefaultLocation(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg := Default()
	if err := cfg.Save(""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	wantPath := filepath.Join(tmpDir, ".pokecollect", "config.json")
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("expected config file at %s: %v", wantPath, err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() from default location error = %v", err)
	}
	if loaded.Format != "text" {
		t.Errorf("Format = %q, want %q", loaded.Format, "text")
	}
}

func TestResolvePath_HomeExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	got, err := resolvePath("~/.pokecollect/config.json")
	if err != nil {
		t.Fatalf("resolvePath() error = %v", err)
	}

	want := filepath.Join(tmpDir, ".pokecollect", "config.json")
	if got != want {
		t.Errorf("resolvePath() = %q, want %q", got, want)
	}
}
