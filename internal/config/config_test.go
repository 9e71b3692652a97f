package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MironCo/mirgo-player/internal/device"
	"github.com/MironCo/mirgo-player/internal/movement"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
window:
  width: 800
player:
  sprintSpeed: 8.5
  coverCheck: false
input:
  jump: F
scenes:
  - scenes/hall.json
  - /abs/yard.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}

	if cfg.Window.Width != 800 {
		t.Errorf("Expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("Expected default height 720, got %d", cfg.Window.Height)
	}
	if cfg.Player.SprintSpeed != 8.5 {
		t.Errorf("Expected sprint speed 8.5, got %f", cfg.Player.SprintSpeed)
	}
	if cfg.Player.MoveSpeed != movement.DefaultConfig().MoveSpeed {
		t.Errorf("Expected default move speed, got %f", cfg.Player.MoveSpeed)
	}
	if cfg.Player.CoverCheck {
		t.Error("Expected cover check to be disabled")
	}
	if cfg.Input.Jump != "F" || cfg.Input.Forward != device.DefaultBindings().Forward {
		t.Errorf("Expected jump F over default bindings, got %+v", cfg.Input)
	}
	if cfg.Scenes[0] != filepath.Join(dir, "scenes/hall.json") {
		t.Errorf("Expected relative scene resolved against config dir, got %s", cfg.Scenes[0])
	}
	if cfg.Scenes[1] != "/abs/yard.json" {
		t.Errorf("Expected absolute scene unchanged, got %s", cfg.Scenes[1])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"no scenes", "window:\n  width: 640\n", ErrNoScenes},
		{"bad player", "scenes: [a.json]\nplayer:\n  gravity: 5\n", movement.ErrInvalidConfig},
		{"bad key", "scenes: [a.json]\ninput:\n  jump: Hyper\n", device.ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "scenes: [a.json]\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned %v", err)
	}
	defer w.Close()

	writeConfig(t, dir, "scenes: [a.json]\nplayer:\n  moveSpeed: 5\n")

	select {
	case cfg := <-w.Reloads:
		if cfg.Player.MoveSpeed != 5 {
			t.Errorf("Expected reloaded move speed 5, got %f", cfg.Player.MoveSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("Unexpected watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "scenes: [a.json]\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned %v", err)
	}
	defer w.Close()

	writeConfig(t, dir, "scenes: []\n")

	select {
	case cfg := <-w.Reloads:
		t.Fatalf("Expected no reload for an invalid file, got %+v", cfg)
	case err := <-w.Errors:
		if !errors.Is(err, ErrNoScenes) {
			t.Errorf("Expected ErrNoScenes, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "scenes: [a.json]\n")

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Reloads:
		t.Errorf("Unexpected reload %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
}
