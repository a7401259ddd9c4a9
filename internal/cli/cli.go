package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"buildgate/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("buildgate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
buildgate - a sequential build-verification pipeline runner.

Usage:
  buildgate [options] [TARGET [ARGS...]]

Arguments:
  TARGET
    Name of the target to run. Defaults to the pipeline's default
    target ('all'). Trailing ARGS are passed through to the invocation.

Options:
`)
		flagSet.PrintDefaults()
	}

	pipelineFlag := flagSet.String("pipeline", "", "Path to a pipeline .hcl file or directory. Empty uses the built-in pipeline.")
	pFlag := flagSet.String("p", "", "Path to a pipeline .hcl file or directory (shorthand).")
	workDirFlag := flagSet.String("C", "", "Working directory for every subprocess. Defaults to the current directory.")
	manifestFlag := flagSet.String("manifest", "requirements.txt", "Dependency manifest path consumed by the 'init' target.")
	listFlag := flagSet.Bool("list", false, "List the available targets and exit.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	pipelinePath := *pipelineFlag
	if pipelinePath == "" {
		pipelinePath = *pFlag
	}

	targetName := ""
	var passThrough []string
	if flagSet.NArg() > 0 {
		targetName = flagSet.Arg(0)
		passThrough = flagSet.Args()[1:]
	}
	slog.Debug("Target determined.", "target", targetName, "args", passThrough)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TargetName:      targetName,
		Args:            passThrough,
		PipelinePath:    pipelinePath,
		WorkDir:         *workDirFlag,
		ManifestPath:    *manifestFlag,
		ListTargets:     *listFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
