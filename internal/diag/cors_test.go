package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCORSOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		status  Status
		passing bool
	}{
		{"dev origin passes", "http://localhost:5173", StatusPass, true},
		{"prod origin passes", "https://campusbites.vercel.app", StatusPass, true},
		{"unknown origin warns only", "https://example.org", StatusWarn, true},
		{"absent fails", "", StatusFail, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := CheckCORSOrigin(tt.origin)
			assert.Len(t, results, 1)
			assert.Equal(t, tt.status, results[0].Status)
			assert.Equal(t, tt.passing, results[0].Status.Passed())
		})
	}
}
