package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/MironCo/mirgo-player/internal/config"
	"github.com/MironCo/mirgo-player/internal/game"
	"github.com/MironCo/mirgo-player/internal/logger"
)

const defaultConfigPath = "assets/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the game config")
	startScene := flag.Int("scene", 0, "index of the first scene to load")
	flag.Parse()

	path, err := resolveConfigPath(*configPath, flagSet("config"))
	if err != nil {
		logger.L().WithError(err).WithField("path", *configPath).Error("bad config path")
		os.Exit(1)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.L().WithError(err).WithField("path", path).Error("failed to load config")
		os.Exit(1)
	}
	logger.Init(cfg.Logging)

	g, err := game.New(cfg, path, *startScene)
	if err != nil {
		logger.L().WithError(err).Error("failed to start")
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		logger.L().WithError(err).Error("game exited")
		os.Exit(1)
	}
}

// resolveConfigPath pins a config path given on the command line to the directory the
// command was run from, before the working directory moves to the executable. The
// default path stays relative so it is found next to the executable.
func resolveConfigPath(path string, explicit bool) (string, error) {
	if !explicit || filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(path)
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
