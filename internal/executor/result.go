package executor

import "time"

// Outcome is the terminal state of an invocation. Once an invocation
// leaves Pending it never returns; there is no partial-resume state.
type Outcome int

const (
	// OutcomePending is the zero value before any step has finished.
	OutcomePending Outcome = iota
	// OutcomeSuccess means every step exited zero.
	OutcomeSuccess
	// OutcomeFailed means a step exited non-zero and execution halted.
	OutcomeFailed
	// OutcomeInterrupted means an external signal terminated the
	// running subprocess and the invocation was abandoned.
	OutcomeInterrupted
)

// String implements the fmt.Stringer interface for Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// StepResult records one finished command execution.
type StepResult struct {
	// Target is the name of the target the command belongs to.
	Target string
	// Argv is the executed command vector.
	Argv []string
	// ExitCode is the subprocess exit status. Zero on success.
	ExitCode int
	// Duration is the wall-clock time the subprocess ran.
	Duration time.Duration
}

// Result is the overall outcome of one invocation, with the per-step
// record of everything that actually ran.
type Result struct {
	// Target is the requested target name.
	Target string
	// Outcome is the terminal state of the invocation.
	Outcome Outcome
	// Steps lists every command that ran, in execution order. A failed
	// or interrupted invocation stops at the offending entry.
	Steps []StepResult
}
