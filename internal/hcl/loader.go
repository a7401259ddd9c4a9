package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"buildgate/internal/config"
	"buildgate/internal/ctxlog"
	"buildgate/internal/fsutil"
	"buildgate/internal/pipeline"
	"buildgate/internal/schema"
)

// Options carries the execution variables made available to pipeline
// expressions at decode time.
type Options struct {
	// ManifestPath is the dependency manifest consumed by the `init`
	// target, exposed to pipeline files as the `manifest` variable.
	ManifestPath string
}

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct {
	opts Options
}

// NewLoader creates a new HCL pipeline loader.
func NewLoader(opts Options) *Loader {
	if opts.ManifestPath == "" {
		opts.ManifestPath = "requirements.txt"
	}
	return &Loader{opts: opts}
}

// Load parses the pipeline files found under the given paths and merges
// them into a single model. With no paths, the embedded built-in
// pipeline is used.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	model := &config.Model{}

	if len(paths) == 0 {
		logger.Debug("No pipeline path provided, using built-in pipeline.")
		file, diags := parser.ParseHCL(pipeline.Default, pipeline.DefaultFilename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse built-in pipeline: %w", diags)
		}
		if err := l.mergeFile(file, evalCtx, model); err != nil {
			return nil, err
		}
		return model, nil
	}

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find pipeline files in %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl pipeline files found in %s", path)
		}
		for _, filePath := range files {
			logger.Debug("Parsing pipeline file.", "path", filePath)
			file, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse pipeline file %s: %w", filePath, diags)
			}
			if err := l.mergeFile(file, evalCtx, model); err != nil {
				return nil, fmt.Errorf("in pipeline file %s: %w", filePath, err)
			}
		}
	}

	logger.Debug("Pipeline loaded.", "targets", len(model.Targets), "default_target", model.DefaultTarget)
	return model, nil
}

// mergeFile decodes a single parsed file and appends its contents to the
// model. A later `pipeline` block overrides an earlier default target.
func (l *Loader) mergeFile(file *hcl.File, evalCtx *hcl.EvalContext, model *config.Model) error {
	var parsed schema.PipelineConfig
	diags := gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode pipeline: %w", diags)
	}

	if parsed.Pipeline != nil && parsed.Pipeline.DefaultTarget != "" {
		model.DefaultTarget = parsed.Pipeline.DefaultTarget
	}
	for _, t := range parsed.Targets {
		model.Targets = append(model.Targets, translateTarget(t))
	}
	return nil
}

// evalContext builds the variable scope shared by every pipeline file.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"manifest": cty.StringVal(l.opts.ManifestPath),
		},
	}
}
