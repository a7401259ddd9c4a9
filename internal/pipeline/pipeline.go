// Package pipeline ships the built-in verification pipeline definition.
// The graph it declares is fixed: loaders fall back to it whenever no
// pipeline path is supplied on the command line.
package pipeline

import _ "embed"

// DefaultFilename is the synthetic filename reported in diagnostics for
// the embedded definition.
const DefaultFilename = "<builtin>/default.hcl"

// Default is the embedded HCL source of the built-in pipeline.
//
//go:embed default.hcl
var Default []byte
