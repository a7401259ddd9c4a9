package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"buildgate/internal/app"
	"buildgate/internal/cli"
	"buildgate/internal/dag"
	"buildgate/internal/executor"
	"buildgate/internal/hcl"
)

// main is the entrypoint for the buildgate application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// An interrupt terminates the current subprocess and aborts the
	// invocation; no partial-resume state is kept.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(ctx context.Context, outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors, so we recover here to
	// surface a clean error to the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader(hcl.Options{ManifestPath: appConfig.ManifestPath})
	buildgateApp := app.NewApp(outW, appConfig, loader)

	return buildgateApp.Run(ctx, appConfig)
}

// exitCode maps an error to the process exit code: the failing tool's
// own code for step failures, 130 for interrupts, 2 for usage and
// unknown-target errors, 1 otherwise.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var stepErr *executor.StepFailedError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode
	}
	if errors.Is(err, executor.ErrInterrupted) {
		return 130
	}
	var unknownErr *dag.UnknownTargetError
	if errors.As(err, &unknownErr) {
		return 2
	}
	return 1
}
