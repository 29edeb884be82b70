package diag

import "fmt"

// MinSecretLen is the minimum accepted length for signing secrets.
const MinSecretLen = 20

// NamedSecret pairs a secret's env name with its value for strength
// checking.
type NamedSecret struct {
	Name  string
	Value string
}

// CheckSecrets validates that each named secret is long enough to
// resist brute force.  A short secret is reported as WEAK: counted as a
// failure but surfaced at warning severity, since the server still runs
// with it.  The boundary is inclusive: exactly MinSecretLen passes.
func CheckSecrets(secrets []NamedSecret) []Result {
	results := make([]Result, 0, len(secrets))
	for _, s := range secrets {
		if len(s.Value) >= MinSecretLen {
			results = append(results, Pass(s.Name, fmt.Sprintf("length %d ok", len(s.Value))))
		} else {
			results = append(results, Weak(s.Name,
				fmt.Sprintf("too short: %d chars, want >= %d", len(s.Value), MinSecretLen)))
		}
	}
	return results
}
