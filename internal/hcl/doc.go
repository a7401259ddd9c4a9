// Package hcl implements the config.Loader interface for HCL pipeline
// files. It parses `pipeline` and `target` blocks, evaluates command
// expressions against the execution variables (e.g. the dependency
// manifest path), and translates the result into the format-agnostic
// config model consumed by the dag builder.
package hcl
