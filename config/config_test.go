package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.History.DefaultLimit != 50 {
		t.Errorf("DefaultLimit = %d, want 50", cfg.History.DefaultLimit)
	}
	if cfg.History.DiffDepth != 5 {
		t.Errorf("DiffDepth = %d, want 5", cfg.History.DiffDepth)
	}
	if cfg.Diff.Algorithm != "greedy" {
		t.Errorf("Algorithm = %q, want greedy", cfg.Diff.Algorithm)
	}
	if cfg.Git.Engine != "gogit" {
		t.Errorf("Engine = %q, want gogit", cfg.Git.Engine)
	}
	if len(cfg.Filters.Include) != 2 || cfg.Filters.Include[0] != "**/*.yaml" {
		t.Errorf("Include = %v", cfg.Filters.Include)
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controlhist.json")
	content := `{
  "history": {"defaultLimit": 20, "diffDepth": 3},
  "diff": {"algorithm": "myers"},
  "filters": {"include": ["controls/**/*.yaml"]}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.History.DefaultLimit != 20 || cfg.History.DiffDepth != 3 {
		t.Errorf("history = %+v", cfg.History)
	}
	if cfg.Diff.Algorithm != "myers" {
		t.Errorf("Algorithm = %q, want myers", cfg.Diff.Algorithm)
	}
	// Untouched sections keep their defaults.
	if cfg.Git.Engine != "gogit" {
		t.Errorf("Engine = %q, want default", cfg.Git.Engine)
	}
	if len(cfg.Filters.Include) != 1 || cfg.Filters.Include[0] != "controls/**/*.yaml" {
		t.Errorf("Include = %v", cfg.Filters.Include)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.History.DefaultLimit != 50 {
		t.Errorf("missing file must yield defaults, got %+v", cfg.History)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() must fail on malformed JSON")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controlhist.json")

	cfg := DefaultConfig()
	cfg.History.DefaultLimit = 25
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.History.DefaultLimit != 25 {
		t.Errorf("DefaultLimit = %d, want 25", loaded.History.DefaultLimit)
	}
}
