// Package diag implements the environment and connectivity diagnostics
// run by cmd/diagnose before a deploy.  Checks execute strictly one
// after another; each one is isolated, never retried, and reports its
// outcome as one or more Results aggregated into a Report.
package diag

import "fmt"

// Status classifies the outcome of a single check result.
//
//	PASS – check succeeded.
//	WARN – something worth a look, still counted as passed
//	       (optional variable missing, unusual CORS origin,
//	       reachable endpoint answering non-2xx).
//	WEAK – validation failed at warning severity, counted as
//	       failed (short secret).
//	FAIL – hard failure, counted as failed.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusWeak Status = "WEAK"
	StatusFail Status = "FAIL"
)

// Passed reports whether the status counts toward the passed total.
func (s Status) Passed() bool { return s == StatusPass || s == StatusWarn }

// Result holds the outcome of a single check item.  Results are
// immutable once produced and belong to exactly one check invocation.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Constructors keep call sites short inside the checks.

func Pass(name, detail string) Result { return Result{Name: name, Status: StatusPass, Detail: detail} }
func Warn(name, detail string) Result { return Result{Name: name, Status: StatusWarn, Detail: detail} }
func Weak(name, detail string) Result { return Result{Name: name, Status: StatusWeak, Detail: detail} }
func Fail(name, detail string) Result { return Result{Name: name, Status: StatusFail, Detail: detail} }

func Passf(name, format string, args ...interface{}) Result {
	return Pass(name, fmt.Sprintf(format, args...))
}

func Warnf(name, format string, args ...interface{}) Result {
	return Warn(name, fmt.Sprintf(format, args...))
}

func Failf(name, format string, args ...interface{}) Result {
	return Fail(name, fmt.Sprintf(format, args...))
}

// Verdict is the overall judgement derived from a Report.
type Verdict int

const (
	// VerdictAllPassed – every result passed.
	VerdictAllPassed Verdict = iota
	// VerdictMostlyPassed – some failures, but the pass rate is at
	// least 80%; deployable with caveats.
	VerdictMostlyPassed
	// VerdictCritical – pass rate below 80%; do not deploy.
	VerdictCritical
)

// Report aggregates results and owns the pass/fail counters.  It
// replaces the global mutable counters of earlier tooling: every
// counter mutation goes through Add, so Passed+Failed always equals
// the number of counted results.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// Add appends a result and updates the counters.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	if res.Status.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
}

// PassRate returns the pass percentage in [0,100].  An empty report
// counts as fully passed.
func (r *Report) PassRate() float64 {
	total := r.Passed + r.Failed
	if total == 0 {
		return 100
	}
	return float64(r.Passed) / float64(total) * 100
}

// RateString renders the pass rate with two decimals, e.g. "80.00%".
func (r *Report) RateString() string {
	return fmt.Sprintf("%.2f%%", r.PassRate())
}

// Verdict classifies the report: all passed, mostly passed (rate >= 80)
// or critical.  The 80% threshold is inclusive.
func (r *Report) Verdict() Verdict {
	if r.Failed == 0 {
		return VerdictAllPassed
	}
	if r.PassRate() >= 80 {
		return VerdictMostlyPassed
	}
	return VerdictCritical
}
