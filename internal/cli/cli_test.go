package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Empty(t, config.TargetName, "no target means the pipeline default")
	assert.Empty(t, config.PipelinePath)
	assert.Equal(t, ".", config.WorkDir)
	assert.Equal(t, "requirements.txt", config.ManifestPath)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Zero(t, config.HealthcheckPort)
}

func TestParse_TargetAndPassThroughArgs(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"lint", "--fix", "-v"}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "lint", config.TargetName)
	assert.Equal(t, []string{"--fix", "-v"}, config.Args)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{
		"-pipeline", "ci/pipeline.hcl",
		"-C", "/srv/repo",
		"-manifest", "requirements-dev.txt",
		"-log-format", "json",
		"-log-level", "debug",
		"-healthcheck-port", "8080",
		"coverage",
	}

	config, _, err := Parse(args, out)

	require.NoError(t, err)
	assert.Equal(t, "ci/pipeline.hcl", config.PipelinePath)
	assert.Equal(t, "/srv/repo", config.WorkDir)
	assert.Equal(t, "requirements-dev.txt", config.ManifestPath)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 8080, config.HealthcheckPort)
	assert.Equal(t, "coverage", config.TargetName)
}

func TestParse_PipelineShorthand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	config, _, err := Parse([]string{"-p", "ci"}, out)

	require.NoError(t, err)
	assert.Equal(t, "ci", config.PipelinePath)
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-log-format", "xml"}, out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-log-level", "verbose"}, out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParse_NegativeHealthcheckPort(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-healthcheck-port", "-1"}, out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
