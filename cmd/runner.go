package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotirelay/internal/server"
	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
	"github.com/urfave/cli/v3"
)

// shutdownGrace bounds how long in-flight requests may run after a signal.
const shutdownGrace = 10 * time.Second

// Runner wires configuration, the Spotify service, and logging into the CLI
// command actions.
type Runner struct {
	config  *shared.Config
	spotify *services.SpotifyService
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts holds the dependencies for a [Runner]. Nil fields fall back to
// defaults.
type RunnerOpts struct {
	Config  *shared.Config
	Spotify *services.SpotifyService
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a Runner, substituting defaults for absent dependencies.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		spotify: opts.Spotify,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// register returns the CLI command tree.
func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		serveCommand(r),
		setupCommand(r),
	}
}

// Serve starts the relay's HTTP server and blocks until a signal arrives or
// the listener fails.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return err
		}
		config.ApplyEnv()
		r.config = config
	}

	if r.spotify == nil {
		svc, err := services.NewSpotifyService(r.config.Spotify)
		if err != nil {
			return err
		}
		r.spotify = svc
	}

	srv := server.New(r.config, r.spotify, r.spotify, r.logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		r.logger.Info("listening", "addr", srv.Addr, "client_origin", r.config.Client.Origin)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Setup writes a starter config file for editing.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return nil
}
