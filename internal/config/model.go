package config

// Model is the unified, format-agnostic representation of a verification
// pipeline: the full set of targets plus the default entry point.
type Model struct {
	// DefaultTarget is the target run when the CLI names none. Empty
	// means the loader's source declared no pipeline block.
	DefaultTarget string

	// Targets holds every declared target in declaration order. The
	// order is significant: it is the tie-breaker for deterministic
	// dependency traversal.
	Targets []*Target
}

// Target is the format-agnostic representation of a `target` block.
// A target with commands is a concrete step producer; a target with
// only dependencies is a pure aggregator (e.g. `test`, `all`).
type Target struct {
	Name        string
	Description string

	// Commands is an ordered list of argv vectors. Each vector is one
	// subprocess invocation; an empty list makes the target a no-op
	// once its dependencies succeed.
	Commands [][]string

	// DependsOn lists dependency target names in declaration order.
	DependsOn []string
}

// Get returns the target with the given name, or nil if none exists.
func (m *Model) Get(name string) *Target {
	for _, t := range m.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}
