package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Timeline saveTimelineConfig `json:"timeline,omitempty"`
	History  saveHistoryConfig  `json:"history,omitempty"`
	Tracks   TracksConfig       `json:"tracks,omitempty"`
	UI       saveUIConfig       `json:"ui"`
}

type saveUIConfig struct {
	ShowFooter *bool       `json:"showFooter,omitempty"`
	Theme      ThemeConfig `json:"theme,omitempty"`
}

type saveTimelineConfig struct {
	MinSelectionWidth string `json:"minSelectionWidth,omitempty"`
	ZeroOffset        string `json:"zeroOffset,omitempty"`
}

type saveHistoryConfig struct {
	Enabled *bool  `json:"enabled,omitempty"`
	DBPath  string `json:"dbPath,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Timeline: saveTimelineConfig{
			MinSelectionWidth: cfg.Timeline.MinSelectionWidth.String(),
			ZeroOffset:        cfg.Timeline.ZeroOffset.String(),
		},
		History: saveHistoryConfig{
			Enabled: &cfg.History.Enabled,
			DBPath:  cfg.History.DBPath,
		},
		Tracks: cfg.Tracks,
		UI: saveUIConfig{
			ShowFooter: &cfg.UI.ShowFooter,
			Theme:      cfg.UI.Theme,
		},
	}
}

// fromSaveConfig applies a parsed save shape onto defaults.
func fromSaveConfig(sc saveConfig) (*Config, error) {
	cfg := Default()
	if sc.Timeline.MinSelectionWidth != "" {
		d, err := time.ParseDuration(sc.Timeline.MinSelectionWidth)
		if err != nil {
			return nil, fmt.Errorf("timeline.minSelectionWidth: %w", err)
		}
		cfg.Timeline.MinSelectionWidth = d
	}
	if sc.Timeline.ZeroOffset != "" {
		d, err := time.ParseDuration(sc.Timeline.ZeroOffset)
		if err != nil {
			return nil, fmt.Errorf("timeline.zeroOffset: %w", err)
		}
		cfg.Timeline.ZeroOffset = d
	}
	if sc.History.Enabled != nil {
		cfg.History.Enabled = *sc.History.Enabled
	}
	if sc.History.DBPath != "" {
		cfg.History.DBPath = sc.History.DBPath
	}
	if sc.Tracks.File != "" {
		cfg.Tracks.File = sc.Tracks.File
	}
	if sc.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *sc.UI.ShowFooter
	}
	if sc.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = sc.UI.Theme.Name
	}
	if sc.UI.Theme.Overrides != nil {
		cfg.UI.Theme.Overrides = sc.UI.Theme.Overrides
	}
	return cfg, nil
}

// ConfigPath returns the config file location, honoring XDG_CONFIG_HOME.
func ConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "zoomline.json"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "zoomline", "config.json")
}

// Load reads the config file at path (ConfigPath() when empty). A missing
// file yields defaults, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var sc saveConfig
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg, err := fromSaveConfig(sc)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path (ConfigPath() when empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(toSaveConfig(cfg), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
