package diag

import "strings"

// Known frontend origins.  The dev origin is the Vite dev server; in
// production the frontend is hosted on Vercel.
const (
	devOrigin      = "http://localhost:5173"
	prodHostSubstr = "vercel.app"
)

// CheckCORSOrigin classifies the configured frontend origin.  An absent
// value fails; the known dev and prod origins pass; anything else is
// flagged as unusual for a human to look at but is not counted as a
// failure.
func CheckCORSOrigin(frontendURL string) []Result {
	const name = "cors origin"
	switch {
	case frontendURL == "":
		return []Result{Fail(name, "FRONTEND_URL not set")}
	case frontendURL == devOrigin:
		return []Result{Pass(name, frontendURL+" (development)")}
	case strings.Contains(frontendURL, prodHostSubstr):
		return []Result{Pass(name, frontendURL+" (production)")}
	default:
		return []Result{Warn(name, frontendURL+" (unusual origin, verify manually)")}
	}
}
