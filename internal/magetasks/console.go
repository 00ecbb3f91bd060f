package magetasks

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/magefile/mage/sh"

	"github.com/dkoosis/asciitable/pkg/table"
)

// Out is where task output is written.
var Out io.Writer = os.Stdout

// Status is the outcome of a Step.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Step is one recorded task command.
type Step struct {
	Name     string
	Status   Status
	Duration time.Duration
}

var steps []Step

// runner executes a command with output attached to the terminal.
// Tests replace it.
var runner = sh.RunV

// Run runs cmd with args as the step called name and records the result.
// A missing optional tool is recorded as skipped and its error returned so
// callers can decide.
func Run(name, cmd string, args ...string) error {
	fmt.Fprintf(Out, "→ %s\n", name)
	start := time.Now()
	err := runner(cmd, args...)
	status := StatusPass
	switch {
	case IsCommandNotFound(err):
		status = StatusSkipped
	case err != nil:
		status = StatusFail
	}
	steps = append(steps, Step{Name: name, Status: status, Duration: time.Since(start).Round(time.Millisecond)})
	return err
}

// Steps returns the recorded steps.
func Steps() []Step {
	return append([]Step(nil), steps...)
}

// ResetSteps forgets every recorded step.
func ResetSteps() {
	steps = nil
}

// PrintSummary writes the recorded steps as a table.
func PrintSummary(title string) {
	t := table.New(title).SetHeading("step", "status", "time")
	table.AddData(t, steps, func(s Step) []any {
		return []any{s.Name, string(s.Status), s.Duration.String()}
	})
	t.SetAlignRight(2)
	fmt.Fprintln(Out, t)
}

// PrintHeader prints a section header.
func PrintHeader(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n\n", title)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Out, "✅ %s\n", msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Out, "⚠️  %s\n", msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Out, "❌ %s\n", msg)
}
