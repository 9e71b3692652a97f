package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MironCo/mirgo-player/internal/device"
	"github.com/MironCo/mirgo-player/internal/logger"
	"github.com/MironCo/mirgo-player/internal/movement"
)

var ErrNoScenes = errors.New("no scenes configured")

type Config struct {
	Window  WindowConfig    `yaml:"window"`
	Logging logger.Config   `yaml:"logging"`
	Player  movement.Config `yaml:"player"`
	Input   device.Bindings `yaml:"input"`
	Scenes  []string        `yaml:"scenes"`
	Debug   DebugConfig     `yaml:"debug"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
	// MaxFrameTime caps the simulated delta time of one frame, in seconds.
	MaxFrameTime float32 `yaml:"maxFrameTime"`
}

type DebugConfig struct {
	Gizmos bool `yaml:"gizmos"`
	HUD    bool `yaml:"hud"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:        1280,
			Height:       720,
			Title:        "mirgo player",
			TargetFPS:    120,
			MaxFrameTime: 0.1,
		},
		Logging: logger.Config{Level: "info", Format: "console"},
		Player:  movement.DefaultConfig(),
		Input:   device.DefaultBindings(),
		Debug:   DebugConfig{Gizmos: true, HUD: true},
	}
}

// Load reads a YAML file over the defaults and validates the result. Relative scene
// paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, scene := range cfg.Scenes {
		if !filepath.IsAbs(scene) {
			cfg.Scenes[i] = filepath.Join(dir, scene)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if len(c.Scenes) == 0 {
		return ErrNoScenes
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MaxFrameTime <= 0 {
		return fmt.Errorf("window maxFrameTime must be positive, got %g", c.Window.MaxFrameTime)
	}
	if err := c.Player.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}
