package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildgate/internal/cli"
	"buildgate/internal/dag"
	"buildgate/internal/executor"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_UnknownTargetAgainstBuiltinPipeline(t *testing.T) {
	t.Parallel()

	args := []string{"-log-level", "error", "definitely-not-a-target"}
	out := &bytes.Buffer{}

	err := run(context.Background(), out, args)

	var unknownErr *dag.UnknownTargetError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "definitely-not-a-target", unknownErr.Name)
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A pipeline file with a syntax error causes a panic inside
	// app.NewApp, which run() must recover into a plain error.
	invalidHCL := `
		target "lint" {
			commands = [
		// Missing closing brackets here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	args := []string{"-log-level", "error", "-pipeline", filePath, "lint"}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, runErr.Error(), "application startup panicked")
	assert.Contains(t, runErr.Error(), "failed to parse")
}

func TestExitCode_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"usage error", &cli.ExitError{Code: 2, Message: "bad flag"}, 2},
		{"step failure propagates tool code", &executor.StepFailedError{Target: "unit", ExitCode: 5}, 5},
		{"wrapped step failure", fmt.Errorf("execution failed: %w", &executor.StepFailedError{Target: "lint", ExitCode: 1}), 1},
		{"interrupt", fmt.Errorf("target %q: %w", "unit", executor.ErrInterrupted), 130},
		{"unknown target", &dag.UnknownTargetError{Name: "deploy"}, 2},
		{"anything else", errors.New("boom"), 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, exitCode(tc.err))
		})
	}
}
