package config

import "context"

// Loader is the interface for a format-specific pipeline loader.
type Loader interface {
	// Load reads pipeline definitions from the given paths, translates
	// them into the format-agnostic model, and returns it. With no
	// paths the loader falls back to its built-in definition.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
