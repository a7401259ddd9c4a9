// Package config defines the format-agnostic pipeline model for the
// application, along with the Loader interface for producing it from a
// configuration source.
//
// The config.Model is the single source of truth for the dag and
// executor packages. Concrete loader implementations, such as for HCL,
// are provided in separate packages.
package config
