// Package schema holds the HCL-tagged structs that mirror the on-disk
// pipeline file format. Translation into the format-agnostic config
// model happens in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// Pipeline represents the optional top-level `pipeline` block.
type Pipeline struct {
	DefaultTarget string `hcl:"default_target,optional"`
}

// Target represents a `target` block from a pipeline file. It is a
// named unit of work with ordered dependencies and an ordered list of
// argv vectors to execute.
type Target struct {
	Name        string     `hcl:"name,label"`
	Description string     `hcl:"description,optional"`
	Commands    [][]string `hcl:"commands,optional"`
	DependsOn   []string   `hcl:"depends_on,optional"`
}

// PipelineConfig represents the top-level structure of a pipeline file,
// containing the pipeline block and all declared targets.
type PipelineConfig struct {
	Pipeline *Pipeline `hcl:"pipeline,block"`
	Targets  []*Target `hcl:"target,block"`
	Body     hcl.Body  `hcl:",remain"`
}
