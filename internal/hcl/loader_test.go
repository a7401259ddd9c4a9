package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePipeline writes an inline pipeline definition to a temp file and
// returns its path.
func writePipeline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesTargetsAndPipelineBlock(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writePipeline(t, `
		pipeline {
			default_target = "all"
		}

		target "lint" {
			description = "Static analysis."
			commands = [["ruff", "check", "."]]
		}

		target "all" {
			depends_on = ["lint"]
		}
	`)
	loader := NewLoader(Options{})

	// --- Act ---
	model, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "all", model.DefaultTarget)
	require.Len(t, model.Targets, 2)

	lint := model.Targets[0]
	assert.Equal(t, "lint", lint.Name)
	assert.Equal(t, "Static analysis.", lint.Description)
	require.Len(t, lint.Commands, 1)
	assert.Equal(t, []string{"ruff", "check", "."}, lint.Commands[0])
	assert.Empty(t, lint.DependsOn)

	all := model.Targets[1]
	assert.Empty(t, all.Commands)
	assert.Equal(t, []string{"lint"}, all.DependsOn)
}

func TestLoad_ResolvesManifestVariable(t *testing.T) {
	t.Parallel()

	path := writePipeline(t, `
		target "init" {
			commands = [["pip3", "install", "-r", manifest]]
		}
	`)
	loader := NewLoader(Options{ManifestPath: "reqs/dev.txt"})

	model, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, model.Targets, 1)
	assert.Equal(t, []string{"pip3", "install", "-r", "reqs/dev.txt"}, model.Targets[0].Commands[0])
}

func TestLoad_ManifestDefaultsToRequirementsTxt(t *testing.T) {
	t.Parallel()

	path := writePipeline(t, `
		target "init" {
			commands = [["pip3", "install", "-r", manifest]]
		}
	`)
	loader := NewLoader(Options{})

	model, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "requirements.txt", model.Targets[0].Commands[0][3])
}

func TestLoad_NoPathsFallsBackToBuiltin(t *testing.T) {
	t.Parallel()

	loader := NewLoader(Options{})

	model, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "all", model.DefaultTarget)
	assert.NotNil(t, model.Get("lint"))
	assert.NotNil(t, model.Get("unit"))
}

func TestLoad_MergesDirectoryDeterministically(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Two files; lexical filename order decides target order.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10-leaves.hcl"), []byte(`
		target "lint" { commands = [["true"]] }
		target "unit" { commands = [["true"]] }
	`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20-roots.hcl"), []byte(`
		pipeline { default_target = "test" }
		target "test" { depends_on = ["lint", "unit"] }
	`), 0644))
	loader := NewLoader(Options{})

	// --- Act ---
	model, err := loader.Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "test", model.DefaultTarget)
	require.Len(t, model.Targets, 3)
	assert.Equal(t, "lint", model.Targets[0].Name)
	assert.Equal(t, "test", model.Targets[2].Name)
}

func TestLoad_SyntaxErrorIsReportedWithFile(t *testing.T) {
	t.Parallel()

	path := writePipeline(t, `target "lint" { commands = [`)
	loader := NewLoader(Options{})

	_, err := loader.Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pipeline file")
	assert.Contains(t, err.Error(), "main.hcl")
}

func TestLoad_EmptyDirectoryIsAnError(t *testing.T) {
	t.Parallel()

	loader := NewLoader(Options{})

	_, err := loader.Load(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl pipeline files found")
}
