package diag

import (
	"context"
	"net/http"
	"time"
)

// DefaultEmailEndpoint is the provider endpoint probed by CheckEmail.
const DefaultEmailEndpoint = "https://api.resend.com/domains"

const emailCheckTimeout = 5 * time.Second

// CheckEmail verifies the email delivery service is reachable.  It
// issues one GET with the bearer key against the provider endpoint.
//
// A 401 response counts as PASS: it proves the endpoint is reachable
// and the key format parses, even when the key itself is rejected.
// Only a transport-level error (DNS, refused connection, timeout) or an
// unexpected status fails the check.
func CheckEmail(ctx context.Context, endpoint, apiKey string) []Result {
	const name = "email service"
	if apiKey == "" {
		return []Result{Fail(name, "EMAIL_API_KEY not set")}
	}

	ctx, cancel := context.WithTimeout(ctx, emailCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return []Result{Failf(name, "build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return []Result{Failf(name, "unreachable: %v", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return []Result{Pass(name, "reachable (401: endpoint up, key parsed)")}
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return []Result{Pass(name, "reachable and key accepted")}
	default:
		return []Result{Failf(name, "unexpected status %d", resp.StatusCode)}
	}
}
