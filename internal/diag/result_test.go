package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportWith(passed, failed int) *Report {
	rep := &Report{}
	for i := 0; i < passed; i++ {
		rep.Add(Pass("p", ""))
	}
	for i := 0; i < failed; i++ {
		rep.Add(Fail("f", ""))
	}
	return rep
}

func TestReport_CountersMatchResults(t *testing.T) {
	rep := &Report{}
	rep.Add(Pass("a", ""))
	rep.Add(Warn("b", ""))
	rep.Add(Weak("c", ""))
	rep.Add(Fail("d", ""))

	assert.Equal(t, 2, rep.Passed) // pass + warn
	assert.Equal(t, 2, rep.Failed) // weak + fail
	assert.Equal(t, len(rep.Results), rep.Passed+rep.Failed)
}

func TestReport_EightyPercentIsWarningNotCritical(t *testing.T) {
	rep := reportWith(8, 2)
	assert.Equal(t, "80.00%", rep.RateString())
	assert.Equal(t, VerdictMostlyPassed, rep.Verdict())
}

func TestReport_Verdicts(t *testing.T) {
	tests := []struct {
		name           string
		passed, failed int
		want           Verdict
	}{
		{"all pass", 5, 0, VerdictAllPassed},
		{"exactly 80", 4, 1, VerdictMostlyPassed},
		{"below 80", 7, 3, VerdictCritical},
		{"everything failed", 0, 4, VerdictCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportWith(tt.passed, tt.failed).Verdict())
		})
	}
}

func TestReport_EmptyIsFullyPassed(t *testing.T) {
	rep := &Report{}
	assert.Equal(t, "100.00%", rep.RateString())
	assert.Equal(t, VerdictAllPassed, rep.Verdict())
}

func TestRateString_TwoDecimals(t *testing.T) {
	rep := reportWith(2, 1)
	assert.Equal(t, "66.67%", rep.RateString())
}
