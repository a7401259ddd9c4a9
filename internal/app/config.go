package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// TargetName is the requested target. Empty means the pipeline's
	// default target.
	TargetName string
	// Args are pass-through arguments following the target name.
	Args []string

	// PipelinePath points at a pipeline .hcl file or directory. Empty
	// uses the built-in pipeline.
	PipelinePath string
	// WorkDir is the working directory inherited by every subprocess.
	WorkDir string
	// ManifestPath is the dependency manifest consumed by `init`.
	ManifestPath string
	// ListTargets prints the target table instead of running anything.
	ListTargets bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = "requirements.txt"
	}
	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("healthcheck port must not be negative, got %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
