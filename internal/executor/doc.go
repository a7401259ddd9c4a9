// Package executor runs resolved invocations: one subprocess at a time,
// strictly sequential, failing fast on the first non-zero exit.
//
// The executor never retries and never recovers silently. Subprocess
// stdout/stderr stream through to the configured writers unmodified;
// the only thing captured is the exit code. Cancelling the context
// terminates the running subprocess and surfaces ErrInterrupted.
package executor
