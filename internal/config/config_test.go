package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	config := getDefaultConfig()

	if config.Window.Width != 800 {
		t.Errorf("Expected default window width 800, got %d", config.Window.Width)
	}
	if config.Window.Height != 600 {
		t.Errorf("Expected default window height 600, got %d", config.Window.Height)
	}
	if config.View.IconSize != 48 {
		t.Errorf("Expected default icon size 48, got %d", config.View.IconSize)
	}
	if config.View.Filter != "" {
		t.Errorf("Expected empty default filter, got '%s'", config.View.Filter)
	}
	if config.View.ShowHiddenFiles {
		t.Error("Expected ShowHiddenFiles to be false by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := newManagerWithPath(filepath.Join(t.TempDir(), "config.json"))

	config, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.View.IconSize != 48 {
		t.Errorf("Expected default icon size 48, got %d", config.View.IconSize)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := newManagerWithPath(path)

	saved := getDefaultConfig()
	saved.Window.Width = 1024
	saved.View.IconSize = 96
	saved.View.Filter = "**/*.go"
	saved.View.ShowHiddenFiles = true
	if err := m.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("Expected window width 1024, got %d", loaded.Window.Width)
	}
	if loaded.View.IconSize != 96 {
		t.Errorf("Expected icon size 96, got %d", loaded.View.IconSize)
	}
	if loaded.View.Filter != "**/*.go" {
		t.Errorf("Expected filter '**/*.go', got '%s'", loaded.View.Filter)
	}
	if !loaded.View.ShowHiddenFiles {
		t.Error("Expected ShowHiddenFiles to be true")
	}
}

func TestLoadMergesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"view":{"iconSize":64}}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	config, err := newManagerWithPath(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.View.IconSize != 64 {
		t.Errorf("Expected icon size 64, got %d", config.View.IconSize)
	}
	if config.Window.Width != 800 {
		t.Errorf("Expected default window width 800, got %d", config.Window.Width)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := newManagerWithPath(path).Load(); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}
