package diag

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_PanicInCheckBecomesFailure(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Out: &out,
		Checks: []Check{
			{Title: "exploding", Run: func(context.Context) []Result { panic("boom") }},
			{Title: "healthy", Run: func(context.Context) []Result { return []Result{Pass("ok", "")} }},
		},
	}

	rep := r.Run(context.Background())

	// The panic is contained and the next check still runs.
	require.Len(t, rep.Results, 2)
	assert.Equal(t, StatusFail, rep.Results[0].Status)
	assert.Contains(t, rep.Results[0].Detail, "boom")
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
}

func TestRunner_ChecksRunInDeclaredOrder(t *testing.T) {
	var order []string
	mk := func(name string) Check {
		return Check{Title: name, Run: func(context.Context) []Result {
			order = append(order, name)
			return []Result{Pass(name, "")}
		}}
	}
	r := &Runner{Checks: []Check{mk("first"), mk("second"), mk("third")}}
	r.Run(context.Background())
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRun_EmptyEnvironmentIsCritical(t *testing.T) {
	specs := DefaultEnvSpecs()
	requiredCount := 0
	for _, s := range specs {
		if s.Required {
			requiredCount++
		}
	}

	rep := &Report{}
	for _, res := range CheckEnv(specs, func(string) (string, bool) { return "", false }) {
		rep.Add(res)
	}
	// Add the downstream checks that fail fast on missing config.
	for _, res := range CheckCORSOrigin("") {
		rep.Add(res)
	}
	for _, res := range CheckSecrets([]NamedSecret{
		{Name: "ACCESS_TOKEN_SECRET"},
		{Name: "REFRESH_TOKEN_SECRET"},
	}) {
		rep.Add(res)
	}

	assert.GreaterOrEqual(t, rep.Failed, requiredCount)
	assert.Equal(t, VerdictCritical, rep.Verdict())
}
