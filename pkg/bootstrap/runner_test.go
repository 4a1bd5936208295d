package bootstrap_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/bootstrap"
)

// fakeRunner records invocations and serves canned results.
type fakeRunner struct {
	lookPaths map[string]string
	outputs   map[string]string
	runErrs   map[string]error
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		lookPaths: map[string]string{},
		outputs:   map[string]string{},
		runErrs:   map[string]error{},
	}
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.lookPaths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmd)
	for prefix, err := range f.runErrs {
		if strings.HasPrefix(cmd, prefix) {
			return err
		}
	}
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmd)
	if out, ok := f.outputs[cmd]; ok {
		return out, nil
	}
	return "", fmt.Errorf("command not found: %s", cmd)
}

func (f *fakeRunner) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// fakeStep is a scriptable bootstrap.Step.
type fakeStep struct {
	name      string
	satisfied bool
	checkErr  error
	runErr    error
	ran       bool
}

func (s *fakeStep) Name() string { return s.name }
func (s *fakeStep) Desc() string { return s.name }
func (s *fakeStep) Check(ctx context.Context) (bool, error) {
	return s.satisfied, s.checkErr
}
func (s *fakeStep) Run(ctx context.Context) error {
	s.ran = true
	return s.runErr
}

// recordingObserver collects lifecycle events.
type recordingObserver struct {
	started  []string
	finished []bootstrap.StepResult
}

func (o *recordingObserver) StepStarted(name, desc string) { o.started = append(o.started, name) }
func (o *recordingObserver) StepFinished(result bootstrap.StepResult) {
	o.finished = append(o.finished, result)
}

func TestRunner_SequentialExecution(t *testing.T) {
	a := &fakeStep{name: "a"}
	b := &fakeStep{name: "b", satisfied: true}
	c := &fakeStep{name: "c"}

	obs := &recordingObserver{}
	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{}, obs)

	results, err := runner.Run(context.Background(), []bootstrap.Step{a, b, c})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, bootstrap.StatusApplied, results[0].Status)
	assert.Equal(t, bootstrap.StatusSatisfied, results[1].Status)
	assert.Equal(t, bootstrap.StatusApplied, results[2].Status)
	assert.True(t, a.ran)
	assert.False(t, b.ran)
	assert.True(t, c.ran)
	assert.Equal(t, []string{"a", "b", "c"}, obs.started)
}

func TestRunner_FailFast(t *testing.T) {
	boom := errors.New("boom")
	a := &fakeStep{name: "a"}
	b := &fakeStep{name: "b", runErr: boom}
	c := &fakeStep{name: "c"}

	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{}, nil)
	results, err := runner.Run(context.Background(), []bootstrap.Step{a, b, c})

	require.ErrorIs(t, err, boom)
	require.Len(t, results, 2)
	assert.Equal(t, bootstrap.StatusFailed, results[1].Status)
	assert.False(t, c.ran, "steps after a failure must not run")
}

func TestRunner_Disabled(t *testing.T) {
	a := &fakeStep{name: "a"}
	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{Disabled: []string{"a"}}, nil)

	results, err := runner.Run(context.Background(), []bootstrap.Step{a})
	require.NoError(t, err)
	assert.Equal(t, bootstrap.StatusDisabled, results[0].Status)
	assert.False(t, a.ran)
}

func TestRunner_DryRun(t *testing.T) {
	a := &fakeStep{name: "a"}
	b := &fakeStep{name: "b", satisfied: true}
	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{DryRun: true}, nil)

	results, err := runner.Run(context.Background(), []bootstrap.Step{a, b})
	require.NoError(t, err)
	assert.Equal(t, bootstrap.StatusWouldRun, results[0].Status)
	assert.Equal(t, bootstrap.StatusSatisfied, results[1].Status)
	assert.False(t, a.ran)
}

func TestRunner_CheckErrorMeansUnsatisfied(t *testing.T) {
	a := &fakeStep{name: "a", checkErr: errors.New("probe failed")}
	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{}, nil)

	results, err := runner.Run(context.Background(), []bootstrap.Step{a})
	require.NoError(t, err)
	assert.Equal(t, bootstrap.StatusApplied, results[0].Status)
	assert.True(t, a.ran)
}

func TestRunner_CheckAll(t *testing.T) {
	a := &fakeStep{name: "a", satisfied: true}
	b := &fakeStep{name: "b"}
	c := &fakeStep{name: "c", checkErr: errors.New("cannot tell")}
	d := &fakeStep{name: "d", satisfied: true}

	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{Disabled: []string{"d"}}, nil)
	results, err := runner.CheckAll(context.Background(), []bootstrap.Step{a, b, c, d})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, bootstrap.StatusSatisfied, results[0].Status)
	assert.Equal(t, bootstrap.StatusUnsatisfied, results[1].Status)
	assert.Equal(t, bootstrap.StatusUnsatisfied, results[2].Status, "a failed check reads as unsatisfied")
	assert.Equal(t, bootstrap.StatusDisabled, results[3].Status)

	for _, s := range []*fakeStep{a, b, c, d} {
		assert.False(t, s.ran, "step %s must not run during a check pass", s.name)
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &fakeStep{name: "a"}
	runner := bootstrap.NewStepRunner(bootstrap.RunnerOptions{}, nil)
	_, err := runner.Run(ctx, []bootstrap.Step{a})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, a.ran)
}
