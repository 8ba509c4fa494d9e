package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
	"github.com/urfave/cli/v3"
)

// resolveConfig loads the config file when present, falling back to embedded
// defaults. A present-but-unreadable file is reported rather than silently
// skipped, so a typo in config.toml doesn't leave the server running on
// placeholder credentials without a trace.
func resolveConfig(path string, logger *log.Logger) *shared.Config {
	config := shared.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := shared.LoadConfig(path)
		if err != nil {
			logger.Warn("config file present but unusable, using defaults", "path", path, "error", err)
		} else {
			config = loaded
		}
	}
	config.ApplyEnv()
	return config
}

func main() {
	logger := shared.NewLogger(nil)

	config := resolveConfig("config.toml", logger)

	var spotify *services.SpotifyService
	if svc, err := services.NewSpotifyService(config.Spotify); err == nil {
		spotify = svc
	} else {
		logger.Warn("spotify credentials not configured", "error", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Spotify: spotify,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "spotirelay",
		Usage:    "Relay between a browser client and the Spotify Web API",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
