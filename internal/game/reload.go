package game

import (
	"time"

	"github.com/MironCo/mirgo-player/internal/config"
	"github.com/MironCo/mirgo-player/internal/device"
	"github.com/MironCo/mirgo-player/internal/logger"
)

func (g *Game) startWatcher() {
	if g.ConfigPath == "" {
		return
	}
	w, err := config.NewWatcher(g.ConfigPath, reloadDebounce*time.Millisecond)
	if err != nil {
		logger.L().WithError(err).WithField("path", g.ConfigPath).Warn("config hot reload unavailable")
		return
	}
	g.watcher = w
}

func (g *Game) stopWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

// drainReloads applies the newest reloaded config, if any, without blocking the frame.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Reloads:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyConfig(cfg)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.L().WithError(err).Warn("config reload rejected")
		default:
			return
		}
	}
}

// applyConfig takes the live-tunable parts of cfg: movement tuning, bindings and
// logging. Window size and the scene list only apply on restart.
func (g *Game) applyConfig(cfg *config.Config) {
	g.World.SetPlayerConfig(cfg.Player)

	if cfg.Input != g.Config.Input {
		poller, err := device.NewPoller(cfg.Input)
		if err != nil {
			logger.L().WithError(err).Warn("keeping previous bindings")
			cfg.Input = g.Config.Input
		} else {
			g.poller = poller
		}
	}
	if cfg.Logging.Level != g.Config.Logging.Level || cfg.Logging.Format != g.Config.Logging.Format {
		logger.Init(cfg.Logging)
	}

	cfg.Window = g.Config.Window
	cfg.Scenes = g.Config.Scenes
	g.Config = cfg
	logger.L().WithField("path", g.ConfigPath).Info("config reloaded")
}
