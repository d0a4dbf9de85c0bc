package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	History HistoryConfig `json:"history"`
	Diff    DiffConfig    `json:"diff"`
	Git     GitConfig     `json:"git"`
	Filters FilterConfig  `json:"filters"`
}

// HistoryConfig holds history query options.
type HistoryConfig struct {
	DefaultLimit int `json:"defaultLimit"` // Default: 50
	DiffDepth    int `json:"diffDepth"`    // Newest commits that get diff payloads. Default: 5
}

// DiffConfig holds content diff options.
type DiffConfig struct {
	Algorithm string `json:"algorithm"` // "greedy" (default) or "myers"
}

// GitConfig holds repository access options.
type GitConfig struct {
	Engine string `json:"engine"` // "gogit" (default) or "cli"
}

// FilterConfig holds the glob filters for the activity feed.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values. The default
// filters track the YAML control files the application manages.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			DefaultLimit: 50,
			DiffDepth:    5,
		},
		Diff: DiffConfig{
			Algorithm: "greedy",
		},
		Git: GitConfig{
			Engine: "gogit",
		},
		Filters: FilterConfig{
			Include: []string{"**/*.yaml", "**/*.yml"},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".controlhist.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".controlhist.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".controlhist.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
