package bootstrap

import "context"

// Step is one idempotent unit of the bootstrap sequence.
type Step interface {
	// Name is the stable identifier used in config and status output.
	Name() string

	// Desc is the one-line description shown while the step runs.
	Desc() string

	// Check reports whether the step is already satisfied. A failed
	// probe counts as unsatisfied, not as a fatal error.
	Check(ctx context.Context) (bool, error)

	// Run performs the step's work. Errors abort the whole run.
	Run(ctx context.Context) error
}

// StepStatus is the outcome of one step within a run.
type StepStatus int

const (
	// StatusSatisfied means Check reported nothing to do.
	StatusSatisfied StepStatus = iota

	// StatusUnsatisfied means Check reported pending work. Only a
	// probing pass reports this; a run either applies or fails.
	StatusUnsatisfied

	// StatusApplied means Run completed.
	StatusApplied

	// StatusDisabled means the step was disabled in configuration.
	StatusDisabled

	// StatusWouldRun means dry-run mode stopped an unsatisfied step.
	StatusWouldRun

	// StatusFailed means Run returned an error.
	StatusFailed
)

// String returns the status label used in run summaries.
func (s StepStatus) String() string {
	switch s {
	case StatusSatisfied:
		return "satisfied"
	case StatusUnsatisfied:
		return "unsatisfied"
	case StatusApplied:
		return "applied"
	case StatusDisabled:
		return "disabled"
	case StatusWouldRun:
		return "would run"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult pairs a step with its outcome.
type StepResult struct {
	Name   string
	Status StepStatus
	Err    error
}
