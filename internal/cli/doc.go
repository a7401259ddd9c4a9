// Package cli parses command-line arguments into an app.Config and
// defines the ExitError type used to carry specific process exit codes
// out of the application.
package cli
