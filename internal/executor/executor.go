package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"buildgate/internal/ctxlog"
	"buildgate/internal/dag"
)

// Context is the explicit execution context every subprocess inherits.
// Making it explicit (instead of relying on process-ambient state)
// keeps runs of the runner itself isolated and testable.
type Context struct {
	// Dir is the working directory for every subprocess.
	Dir string
	// Env is the environment for every subprocess. Nil inherits the
	// runner's own environment.
	Env []string
	// Stdout and Stderr receive subprocess output unbuffered.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes invocations strictly sequentially: one subprocess at
// a time, each blocking until termination.
type Runner struct {
	execCtx Context
}

// New creates a Runner for the given execution context, filling in
// process defaults for unset fields.
func New(execCtx Context) *Runner {
	if execCtx.Dir == "" {
		execCtx.Dir = "."
	}
	if execCtx.Stdout == nil {
		execCtx.Stdout = os.Stdout
	}
	if execCtx.Stderr == nil {
		execCtx.Stderr = os.Stderr
	}
	return &Runner{execCtx: execCtx}
}

// Run executes every step of the invocation in order. It halts on the
// first non-zero exit with a *StepFailedError, and on context
// cancellation with an error wrapping ErrInterrupted. The returned
// Result records what actually ran in either case.
func (r *Runner) Run(ctx context.Context, inv *dag.Invocation) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	result := &Result{Target: inv.Target}

	for _, node := range inv.Steps {
		if len(node.Commands) == 0 {
			// Pure aggregator: a no-op once its dependencies succeeded.
			logger.Debug("Target has no commands, nothing to run.", "target", node.Name)
			continue
		}

		logger.Info("▶️ Starting target", "target", node.Name)
		for _, argv := range node.Commands {
			step, err := r.runCommand(ctx, node.Name, argv)
			if step != nil {
				result.Steps = append(result.Steps, *step)
			}
			if err != nil {
				if errors.Is(err, ErrInterrupted) {
					result.Outcome = OutcomeInterrupted
				} else {
					result.Outcome = OutcomeFailed
				}
				return result, err
			}
		}
		logger.Info("✅ Finished target", "target", node.Name)
	}

	result.Outcome = OutcomeSuccess
	return result, nil
}

// runCommand executes a single argv vector as a subprocess and waits
// for it to terminate.
func (r *Runner) runCommand(ctx context.Context, target string, argv []string) (*StepResult, error) {
	logger := ctxlog.FromContext(ctx)
	if len(argv) == 0 {
		return nil, fmt.Errorf("target %q has an empty command", target)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.execCtx.Dir
	cmd.Env = r.execCtx.Env
	cmd.Stdout = r.execCtx.Stdout
	cmd.Stderr = r.execCtx.Stderr

	logger.Debug("Spawning subprocess.", "target", target, "command", strings.Join(argv, " "), "dir", cmd.Dir)
	start := time.Now()
	err := cmd.Run()
	step := &StepResult{
		Target:   target,
		Argv:     argv,
		Duration: time.Since(start),
	}

	// A cancelled context means the subprocess was killed by us, not
	// that the tool itself failed.
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Warn("Subprocess terminated by interrupt.", "target", target)
		step.ExitCode = -1
		return step, fmt.Errorf("target %q: %w", target, ErrInterrupted)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			step.ExitCode = exitErr.ExitCode()
			logger.Error("Subprocess exited non-zero.", "target", target, "exit_code", step.ExitCode)
			return step, &StepFailedError{Target: target, ExitCode: step.ExitCode}
		}
		// The subprocess never started (e.g. the tool is not installed).
		return nil, fmt.Errorf("target %q: failed to start %q: %w", target, argv[0], err)
	}

	logger.Debug("Subprocess finished.", "target", target, "duration", step.Duration)
	return step, nil
}
