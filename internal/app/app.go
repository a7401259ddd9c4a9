package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"buildgate/internal/config"
	"buildgate/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model

	// Subprocess output streams through these unmodified.
	subStdout io.Writer
	subStderr io.Writer
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// loaded pipeline model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if appConfig.PipelinePath != "" {
		paths = append(paths, appConfig.PipelinePath)
	}

	model, err := loader.Load(ctx, paths...)
	if err != nil {
		// A failure to load the pipeline is a fatal startup error.
		panic(fmt.Errorf("failed to load pipeline: %w", err))
	}
	logger.Debug("Pipeline loaded and translated into unified model.", "targets", len(model.Targets))

	return &App{
		outW:      outW,
		logger:    logger,
		model:     model,
		subStdout: os.Stdout,
		subStderr: os.Stderr,
	}
}

// Model returns the loaded pipeline model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// SetSubprocessIO redirects subprocess stdout/stderr, primarily so
// tests can capture tool output without touching the process streams.
func (a *App) SetSubprocessIO(stdout, stderr io.Writer) {
	a.subStdout = stdout
	a.subStderr = stderr
}
