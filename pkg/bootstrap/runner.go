package bootstrap

import (
	"context"

	"github.com/shellkit/shellkit/pkg/logging"
)

// Observer receives step lifecycle events for progress rendering.
// It is optional; a nil observer is valid.
type Observer interface {
	StepStarted(name, desc string)
	StepFinished(result StepResult)
}

// RunnerOptions controls a bootstrap run.
type RunnerOptions struct {
	// DryRun reports which steps would run without executing them.
	DryRun bool

	// Disabled holds step names skipped entirely.
	Disabled []string
}

// Runner executes steps sequentially under fail-fast semantics.
type Runner struct {
	opts     RunnerOptions
	observer Observer
}

// NewStepRunner creates a Runner. observer may be nil.
func NewStepRunner(opts RunnerOptions, observer Observer) *Runner {
	return &Runner{opts: opts, observer: observer}
}

// Run executes the steps in order. The first Run failure aborts the
// sequence and is returned alongside the results accumulated so far.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]StepResult, error) {
	logger := logging.GetLogger("bootstrap")
	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if r.disabled(step.Name()) {
			logger.Info().Str("step", step.Name()).Msg("step disabled, skipping")
			results = append(results, r.finish(StepResult{Name: step.Name(), Status: StatusDisabled}))
			continue
		}

		if r.observer != nil {
			r.observer.StepStarted(step.Name(), step.Desc())
		}

		satisfied, err := step.Check(ctx)
		if err != nil {
			// A failed probe means "not satisfied", never a fatal error.
			logger.Debug().Err(err).Str("step", step.Name()).Msg("check failed, treating as unsatisfied")
			satisfied = false
		}
		if satisfied {
			logger.Debug().Str("step", step.Name()).Msg("already satisfied")
			results = append(results, r.finish(StepResult{Name: step.Name(), Status: StatusSatisfied}))
			continue
		}

		if r.opts.DryRun {
			results = append(results, r.finish(StepResult{Name: step.Name(), Status: StatusWouldRun}))
			continue
		}

		logger.Info().Str("step", step.Name()).Msg("running step")
		if err := step.Run(ctx); err != nil {
			result := r.finish(StepResult{Name: step.Name(), Status: StatusFailed, Err: err})
			results = append(results, result)
			return results, err
		}
		results = append(results, r.finish(StepResult{Name: step.Name(), Status: StatusApplied}))
	}

	return results, nil
}

// CheckAll reports each step's current state without running anything.
// Steps come back satisfied, unsatisfied, or disabled.
func (r *Runner) CheckAll(ctx context.Context, steps []Step) ([]StepResult, error) {
	logger := logging.GetLogger("bootstrap")
	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if r.disabled(step.Name()) {
			results = append(results, StepResult{Name: step.Name(), Status: StatusDisabled})
			continue
		}

		satisfied, err := step.Check(ctx)
		if err != nil {
			logger.Debug().Err(err).Str("step", step.Name()).Msg("check failed, treating as unsatisfied")
			satisfied = false
		}
		status := StatusUnsatisfied
		if satisfied {
			status = StatusSatisfied
		}
		results = append(results, StepResult{Name: step.Name(), Status: status})
	}

	return results, nil
}

func (r *Runner) finish(result StepResult) StepResult {
	if r.observer != nil {
		r.observer.StepFinished(result)
	}
	return result
}

func (r *Runner) disabled(name string) bool {
	for _, d := range r.opts.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
