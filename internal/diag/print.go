package diag

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
)

// printSection writes a section header for a check group.
func printSection(w io.Writer, title string) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "\n%s\n", color.Cyan(color.Bold("== "+title+" ==")))
}

// printResult writes one colored result line:
//
//	[PASS] mongodb connection: connected and pinged primary
//
// WARN and WEAK render yellow, FAIL red.
func printResult(w io.Writer, res Result) {
	if w == nil {
		return
	}
	var tag string
	switch res.Status {
	case StatusPass:
		tag = color.Green("[PASS]")
	case StatusWarn:
		tag = color.Yellow("[WARN]")
	case StatusWeak:
		tag = color.Yellow("[WEAK]")
	default:
		tag = color.Red("[FAIL]")
	}
	fmt.Fprintf(w, "%s %s: %s\n", tag, res.Name, res.Detail)
}

// PrintSummary renders the final tally and verdict for a report.
func PrintSummary(w io.Writer, rep *Report) {
	if w == nil {
		return
	}
	printSection(w, "Summary")
	fmt.Fprintf(w, "passed: %d  failed: %d  rate: %s\n", rep.Passed, rep.Failed, rep.RateString())

	switch rep.Verdict() {
	case VerdictAllPassed:
		fmt.Fprintln(w, color.Green(color.Bold("All checks passed. Ship it.")))
	case VerdictMostlyPassed:
		fmt.Fprintln(w, color.Yellow(color.Bold("Some checks failed but the pass rate is acceptable. Review the failures above.")))
	default:
		fmt.Fprintln(w, color.Red(color.Bold("Critical: too many checks failed. Do not deploy.")))
	}
}
