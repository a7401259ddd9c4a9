package hcl

import (
	"buildgate/internal/config"
	"buildgate/internal/schema"
)

// translateTarget converts the HCL-specific target schema into the
// agnostic model. Slices are copied so the model does not alias decoder
// internals.
func translateTarget(s *schema.Target) *config.Target {
	t := &config.Target{
		Name:        s.Name,
		Description: s.Description,
	}
	if len(s.Commands) > 0 {
		t.Commands = make([][]string, len(s.Commands))
		for i, argv := range s.Commands {
			t.Commands[i] = append([]string(nil), argv...)
		}
	}
	if len(s.DependsOn) > 0 {
		t.DependsOn = append([]string(nil), s.DependsOn...)
	}
	return t
}
