package diag

import "fmt"

// Spec describes one environment variable the application consumes.
// The table is static: defined once, never mutated.
type Spec struct {
	Name      string
	Required  bool
	Sensitive bool
}

// DefaultEnvSpecs lists every variable the server reads, in the order
// they are reported.
func DefaultEnvSpecs() []Spec {
	return []Spec{
		{Name: "MONGODB_URI", Required: true, Sensitive: true},
		{Name: "FRONTEND_URL", Required: true},
		{Name: "CLOUD_NAME", Required: true},
		{Name: "API_KEY", Required: true},
		{Name: "API_SECRET_KEY", Required: true, Sensitive: true},
		{Name: "EMAIL_API_KEY", Required: true, Sensitive: true},
		{Name: "ACCESS_TOKEN_SECRET", Required: true, Sensitive: true},
		{Name: "REFRESH_TOKEN_SECRET", Required: true, Sensitive: true},
		{Name: "PORT", Required: false},
		{Name: "PAYMENT_SECRET_KEY", Required: false, Sensitive: true},
	}
}

// LookupFunc abstracts os.LookupEnv for testing.
type LookupFunc func(key string) (string, bool)

// CheckEnv reports one result per spec.  A required variable that is
// absent or empty fails; an optional one only warns ("not set" in both
// displays, but never counted as a failure).  Sensitive values are
// redacted to their last four characters.
func CheckEnv(specs []Spec, lookup LookupFunc) []Result {
	results := make([]Result, 0, len(specs))
	for _, s := range specs {
		v, ok := lookup(s.Name)
		switch {
		case !ok || v == "":
			if s.Required {
				results = append(results, Fail(s.Name, "not set"))
			} else {
				results = append(results, Warn(s.Name, "not set (optional)"))
			}
		case s.Sensitive:
			results = append(results, Pass(s.Name, redact(v)))
		default:
			results = append(results, Pass(s.Name, v))
		}
	}
	return results
}

// redact hides all but the last four characters of a sensitive value.
func redact(v string) string {
	if len(v) <= 4 {
		return "***"
	}
	return fmt.Sprintf("***%s", v[len(v)-4:])
}
