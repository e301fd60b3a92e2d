// Package config holds the iconview demo configuration: a JSON file under
// the per-OS config directory with defaults merged over missing fields.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents the iconview configuration
type Config struct {
	Window WindowConfig `json:"window"`
	View   ViewConfig   `json:"view"`
}

// WindowConfig represents window-related settings
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewConfig represents icon grid settings
type ViewConfig struct {
	IconSize        int    `json:"iconSize"`        // icon edge length in pixels
	Filter          string `json:"filter"`          // doublestar glob applied to file names; empty shows everything
	ShowHiddenFiles bool   `json:"showHiddenFiles"` // include dotfiles in the grid
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// newManagerWithPath exists for tests.
func newManagerWithPath(path string) *Manager {
	return &Manager{configPath: path}
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		View: ViewConfig{
			IconSize:        48,
			Filter:          "",
			ShowHiddenFiles: false,
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\fileicon\iconview\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "fileicon", "iconview")

	case "darwin":
		// macOS: ~/Library/Application Support/fileicon/iconview/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.json"
		}
		configDir = filepath.Join(home, "Library", "Application Support", "fileicon", "iconview")

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/fileicon/iconview/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "fileicon", "iconview")
	}

	return filepath.Join(configDir, "config.json")
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}
	if fileConfig.View.IconSize != 0 {
		defaultConfig.View.IconSize = fileConfig.View.IconSize
	}
	if fileConfig.View.Filter != "" {
		defaultConfig.View.Filter = fileConfig.View.Filter
	}
	// Boolean: can't distinguish false from unset, so the file value wins
	defaultConfig.View.ShowHiddenFiles = fileConfig.View.ShowHiddenFiles
}
