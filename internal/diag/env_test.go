package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestCheckEnv_Counters(t *testing.T) {
	specs := []Spec{
		{Name: "REQ_SET", Required: true},
		{Name: "REQ_MISSING", Required: true},
		{Name: "OPT_MISSING", Required: false},
	}
	vars := map[string]string{"REQ_SET": "value"}

	rep := &Report{}
	for _, res := range CheckEnv(specs, mapLookup(vars)) {
		rep.Add(res)
	}

	// Required present -> +1 passed; required absent -> +1 failed;
	// optional absent -> counted as passed (warn), never a failure.
	assert.Equal(t, 2, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
}

func TestCheckEnv_OptionalAbsenceIsNotAFailure(t *testing.T) {
	specs := []Spec{{Name: "PORT", Required: false}}
	results := CheckEnv(specs, mapLookup(nil))

	assert.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.True(t, results[0].Status.Passed())
	assert.Contains(t, results[0].Detail, "not set")
}

func TestCheckEnv_SensitiveRedaction(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"long value shows last four", "supersecretvalueabcd", "***abcd"},
		{"short value fully hidden", "abcd", "***"},
		{"tiny value fully hidden", "x", "***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := []Spec{{Name: "SECRET", Required: true, Sensitive: true}}
			results := CheckEnv(specs, mapLookup(map[string]string{"SECRET": tt.value}))
			assert.Equal(t, tt.want, results[0].Detail)
		})
	}
}

func TestCheckEnv_NonSensitiveShownVerbatim(t *testing.T) {
	specs := []Spec{{Name: "FRONTEND_URL", Required: true}}
	results := CheckEnv(specs, mapLookup(map[string]string{"FRONTEND_URL": "http://localhost:5173"}))
	assert.Equal(t, "http://localhost:5173", results[0].Detail)
}
