package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Timeline TimelineConfig `json:"timeline"`
	History  HistoryConfig  `json:"history"`
	Tracks   TracksConfig   `json:"tracks"`
	UI       UIConfig       `json:"ui"`
}

// TimelineConfig configures the selection gesture.
type TimelineConfig struct {
	// MinSelectionWidth is the time span a drag must cover before it counts
	// as a selection rather than a click.
	MinSelectionWidth time.Duration `json:"minSelectionWidth"`
	// ZeroOffset is subtracted from both selection edges when a zoom is
	// committed, re-basing the window against an external baseline.
	ZeroOffset time.Duration `json:"zeroOffset"`
}

// HistoryConfig configures zoom history persistence.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"dbPath"`
}

// TracksConfig configures where span data comes from.
type TracksConfig struct {
	// File is a JSON tracks file. Empty means built-in demo data.
	File string `json:"file"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			MinSelectionWidth: 50 * time.Millisecond,
			ZeroOffset:        0,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "", // resolved next to the config file when empty
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate checks the configuration and repairs out-of-range values.
func (c *Config) Validate() error {
	if c.Timeline.MinSelectionWidth < 0 {
		c.Timeline.MinSelectionWidth = 50 * time.Millisecond
	}
	return nil
}
