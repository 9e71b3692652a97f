package logger

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string    `yaml:"level"`
	Format string    `yaml:"format"` // "console", "text" or "json"
	Output io.Writer `yaml:"-"`
}

var current atomic.Pointer[logrus.Logger]

// Init installs the process logger. Calling it again replaces the previous logger.
func Init(cfg Config) {
	current.Store(New(cfg))
}

// L returns the process logger, installing a debug console logger on first use.
func L() *logrus.Logger {
	if lg := current.Load(); lg != nil {
		return lg
	}
	Init(Config{Level: "debug", Format: "console"})
	return current.Load()
}

// New builds a logger without installing it.
func New(cfg Config) *logrus.Logger {
	lg := logrus.New()
	lg.Out = os.Stderr
	if cfg.Output != nil {
		lg.Out = cfg.Output
	}
	lg.Level = parseLevel(cfg.Level)

	switch cfg.Format {
	case "json":
		lg.Formatter = &logrus.JSONFormatter{}
	case "text":
		lg.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	default:
		lg.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"}
	}
	return lg
}

// parseLevel falls back to info for empty or unknown names.
func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
