package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/shellkit/shellkit/pkg/bootstrap"
	"github.com/shellkit/shellkit/pkg/types"
)

// StepView is a bootstrap.Observer rendering step progress. Rich
// terminals get a spinner per step; plain output gets one line each.
type StepView struct {
	format  Format
	spinner *pterm.SpinnerPrinter
}

// NewStepView creates a StepView for the resolved output format.
func NewStepView(format Format) *StepView {
	return &StepView{format: format}
}

// StepStarted implements bootstrap.Observer.
func (v *StepView) StepStarted(name, desc string) {
	if v.format == FormatTerminal {
		v.spinner, _ = pterm.DefaultSpinner.Start(desc)
		return
	}
	fmt.Printf("==> %s\n", desc)
}

// StepFinished implements bootstrap.Observer.
func (v *StepView) StepFinished(result bootstrap.StepResult) {
	spinner := v.spinner
	v.spinner = nil

	switch result.Status {
	case bootstrap.StatusSatisfied:
		v.done(spinner, fmt.Sprintf("%s: already satisfied", result.Name))
	case bootstrap.StatusApplied:
		v.done(spinner, fmt.Sprintf("%s: done", result.Name))
	case bootstrap.StatusDisabled:
		fmt.Printf("    %s: disabled in config\n", result.Name)
	case bootstrap.StatusWouldRun:
		v.warn(spinner, fmt.Sprintf("%s: would run", result.Name))
	case bootstrap.StatusFailed:
		v.fail(spinner, fmt.Sprintf("%s: %v", result.Name, result.Err))
	}
}

func (v *StepView) done(spinner *pterm.SpinnerPrinter, msg string) {
	if spinner != nil {
		spinner.Success(msg)
		return
	}
	fmt.Printf("    %s\n", msg)
}

func (v *StepView) warn(spinner *pterm.SpinnerPrinter, msg string) {
	if spinner != nil {
		spinner.Warning(msg)
		return
	}
	fmt.Printf("    %s\n", msg)
}

func (v *StepView) fail(spinner *pterm.SpinnerPrinter, msg string) {
	if spinner != nil {
		spinner.Fail(msg)
		return
	}
	fmt.Printf("    %s\n", msg)
}

// RenderLinkResults prints the outcome of an install or restore pass.
func RenderLinkResults(w io.Writer, format Format, results []types.LinkResult) {
	for _, res := range results {
		line := fmt.Sprintf("%-12s %s", res.Spec.Name, res.Action)
		if res.Warning != "" {
			line += " (" + res.Warning + ")"
		}
		switch {
		case format != FormatTerminal:
			fmt.Fprintln(w, line)
		case res.Action == types.ActionSkipped:
			fmt.Fprintln(w, GetStyle("Warning").Render(line))
		default:
			fmt.Fprintln(w, GetStyle("Success").Render(line))
		}
	}
}

// RenderLinkStatus prints the non-mutating status table.
func RenderLinkStatus(w io.Writer, format Format, statuses []types.LinkStatus) {
	if format == FormatTerminal {
		data := pterm.TableData{{"LINK", "STATE", "BACKUP", "TARGET"}}
		for _, st := range statuses {
			backup := "-"
			if st.HasBackup {
				backup = "yes"
			}
			data = append(data, []string{st.Spec.Name, st.State.String(), backup, st.Spec.Target})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		return
	}

	for _, st := range statuses {
		backup := ""
		if st.HasBackup {
			backup = " [backup present]"
		}
		fmt.Fprintf(w, "%-12s %-12s %s%s\n", st.Spec.Name, st.State, st.Spec.Target, backup)
	}
}

// RenderStepStatus prints the bootstrap step state table.
func RenderStepStatus(w io.Writer, format Format, results []bootstrap.StepResult) {
	if format == FormatTerminal {
		data := pterm.TableData{{"STEP", "STATE"}}
		for _, res := range results {
			data = append(data, []string{res.Name, res.Status.String()})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		return
	}

	for _, res := range results {
		fmt.Fprintf(w, "%-12s %s\n", res.Name, res.Status)
	}
}

// RenderError prints a fatal error in the house style.
func RenderError(w io.Writer, format Format, err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if format == FormatTerminal {
		msg = GetStyle("Error").Render(msg)
	}
	fmt.Fprintln(w, msg)
}
