package diag

import (
	"context"
	"io"
)

// Check is one named diagnostic step.  Run returns the results of the
// step; it may block on the network but must honor ctx deadlines set by
// the check itself (each check carries its own timeout).
type Check struct {
	Title string
	Run   func(ctx context.Context) []Result
}

// Runner executes checks sequentially and prints each result as it is
// produced.  A failure in one check never aborts the run: errors are
// converted into Results and execution proceeds to the next check.
type Runner struct {
	Out    io.Writer
	Checks []Check
}

// Run executes all checks in order and returns the aggregated report.
func (r *Runner) Run(ctx context.Context) *Report {
	rep := &Report{}
	for _, chk := range r.Checks {
		printSection(r.Out, chk.Title)
		for _, res := range runIsolated(ctx, chk) {
			rep.Add(res)
			printResult(r.Out, res)
		}
	}
	return rep
}

// runIsolated invokes a check, converting a panic inside it into a
// single FAIL result so the remaining checks still run.
func runIsolated(ctx context.Context, chk Check) (results []Result) {
	defer func() {
		if p := recover(); p != nil {
			results = []Result{Failf(chk.Title, "unexpected error: %v", p)}
		}
	}()
	return chk.Run(ctx)
}
