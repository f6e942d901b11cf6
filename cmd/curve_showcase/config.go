// cmd/curve_showcase/config.go
// Loading and defaults for the curve showcase configuration.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds window, grid and playback settings.
type GlobalConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Grid     GridConfig     `yaml:"grid"`
	Playback PlaybackConfig `yaml:"playback"`
	Store    StoreConfig    `yaml:"store"`
}

// WindowConfig is the window size and title.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig lays out the cells.
type GridConfig struct {
	Columns     int `yaml:"columns"`
	CellWidth   int `yaml:"cell_width"`
	CellHeight  int `yaml:"cell_height"`
	Padding     int `yaml:"padding"`
	RowsPerPage int `yaml:"rows_per_page"`
}

// PlaybackConfig controls how fast cells play.
type PlaybackConfig struct {
	TPS    int     `yaml:"tps"`
	Speed  float64 `yaml:"speed"`  // time multiplier applied to every cell
	Period float64 `yaml:"period"` // seconds for one pass of a curve cell
	Points int     `yaml:"points"` // samples per plotted curve
}

// StoreConfig enables saving playback positions between runs.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

// ShowcaseConfig is the whole showcase configuration.
type ShowcaseConfig struct {
	Global GlobalConfig `yaml:"global"`

	// Curves lists catalog names or cubic-bezier() text to show. Empty means
	// the whole catalog.
	Curves []string `yaml:"curves"`

	// SequenceFile optionally points at a sequence definition document;
	// every sequence in it gets a cell after the curves.
	SequenceFile string `yaml:"sequence_file"`
}

// LoadConfig reads configPath and fills in defaults.
func LoadConfig(configPath string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a showcase configuration and fills in defaults.
func ParseConfig(data []byte) (*ShowcaseConfig, error) {
	var config ShowcaseConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Global.Window.Width == 0 {
		config.Global.Window.Width = 1280
	}
	if config.Global.Window.Height == 0 {
		config.Global.Window.Height = 800
	}
	if config.Global.Window.Title == "" {
		config.Global.Window.Title = "Curve Showcase"
	}
	if config.Global.Playback.TPS == 0 {
		config.Global.Playback.TPS = 60
	}
	if config.Global.Playback.Speed == 0 {
		config.Global.Playback.Speed = 1.0
	}
	if config.Global.Playback.Period == 0 {
		config.Global.Playback.Period = 2.0
	}
	if config.Global.Playback.Points == 0 {
		config.Global.Playback.Points = 64
	}
	if config.Global.Grid.Columns == 0 {
		config.Global.Grid.Columns = 6
	}
	if config.Global.Grid.CellWidth == 0 {
		config.Global.Grid.CellWidth = 200
	}
	if config.Global.Grid.CellHeight == 0 {
		config.Global.Grid.CellHeight = 170
	}
	if config.Global.Grid.Padding == 0 {
		config.Global.Grid.Padding = 10
	}
	if config.Global.Grid.RowsPerPage == 0 {
		config.Global.Grid.RowsPerPage = 4
	}
	if config.Global.Store.AppName == "" {
		config.Global.Store.AppName = "keyframe_showcase"
	}

	if config.Global.Playback.Period < 0 || config.Global.Playback.Speed < 0 {
		return nil, fmt.Errorf("playback period and speed must be positive")
	}
	if config.Global.Playback.Points < 2 {
		return nil, fmt.Errorf("playback points must be at least 2, got %d", config.Global.Playback.Points)
	}

	return &config, nil
}

// CellsPerPage returns how many cells fit on one page.
func (c *ShowcaseConfig) CellsPerPage() int {
	return c.Global.Grid.RowsPerPage * c.Global.Grid.Columns
}
