// Package testutil provides the shared harness for pipeline integration
// tests: temp-dir fixtures, log capture, and a one-call app runner.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"buildgate/internal/app"
	"buildgate/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	ToolOut   string
	Err       error
	App       *app.App
	WorkDir   string
}

// RunPipelineTest provides a standardized harness for running the app
// against an inline pipeline definition using a background context.
func RunPipelineTest(t *testing.T, pipelineHCL string, target string) *HarnessResult {
	t.Helper()
	return RunPipelineTestWithContext(context.Background(), t, pipelineHCL, target)
}

// RunPipelineTestWithContext runs the app against an inline pipeline
// definition with a caller-provided context.
func RunPipelineTestWithContext(ctx context.Context, t *testing.T, pipelineHCL string, target string) *HarnessResult {
	t.Helper()

	// 1. Create dedicated, non-overlapping directories for the pipeline
	//    definition and the subprocess working directory.
	tmpDir := t.TempDir()
	pipelineDir := filepath.Join(tmpDir, "pipeline")
	workDir := filepath.Join(tmpDir, "work")
	require.NoError(t, os.Mkdir(pipelineDir, 0755))
	require.NoError(t, os.Mkdir(workDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pipelineDir, "main.hcl"), []byte(pipelineHCL), 0644))

	appConfig, err := app.NewConfig(app.Config{
		TargetName:   target,
		PipelinePath: pipelineDir,
		WorkDir:      workDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	toolBuffer := &SafeBuffer{}
	result := &HarnessResult{WorkDir: workDir}

	t.Cleanup(func() {
		if os.Getenv("BUILDGATE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	// 2. NewApp panics on startup errors; fold those into the result so
	//    tests can assert on them like any other failure.
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panicked: %v", r)
			}
		}()
		loader := hcl.NewLoader(hcl.Options{ManifestPath: appConfig.ManifestPath})
		testApp := app.NewApp(logBuffer, appConfig, loader)
		testApp.SetSubprocessIO(toolBuffer, toolBuffer)
		result.App = testApp
		result.Err = testApp.Run(ctx, appConfig)
	}()

	result.LogOutput = logBuffer.String()
	result.ToolOut = toolBuffer.String()
	return result
}
