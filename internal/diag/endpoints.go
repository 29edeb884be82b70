package diag

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is where the local API server is probed unless
// overridden by flag or DIAG_BASE_URL.
const DefaultBaseURL = "http://localhost:8080"

const endpointCheckTimeout = 5 * time.Second

// Endpoint is one local API probe: a method, a path relative to the
// base URL and an optional JSON body.
type Endpoint struct {
	Method string
	Path   string
	Body   string
}

// DefaultEndpoints lists the routes probed against a running server:
// the root banner, the public category list and the first product page.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Method: http.MethodGet, Path: "/"},
		{Method: http.MethodGet, Path: "/api/category/get"},
		{Method: http.MethodPost, Path: "/api/product/get", Body: `{"skip":0,"limit":10}`},
	}
}

// CheckEndpoints issues one request per endpoint against baseURL.  A
// 2xx answer passes; any other status warns (the server is up, the
// route misbehaves); a transport error fails.  Requests run strictly
// one after another, each with its own timeout.
func CheckEndpoints(ctx context.Context, client *http.Client, baseURL string, endpoints []Endpoint) []Result {
	if client == nil {
		client = &http.Client{Timeout: endpointCheckTimeout}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	results := make([]Result, 0, len(endpoints))
	for _, ep := range endpoints {
		results = append(results, probeEndpoint(ctx, client, baseURL, ep))
	}
	return results
}

func probeEndpoint(ctx context.Context, client *http.Client, baseURL string, ep Endpoint) Result {
	name := ep.Method + " " + ep.Path

	var body io.Reader
	if ep.Body != "" {
		body = strings.NewReader(ep.Body)
	}
	req, err := http.NewRequestWithContext(ctx, ep.Method, baseURL+ep.Path, body)
	if err != nil {
		return Failf(name, "build request: %v", err)
	}
	if ep.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return Failf(name, "unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Passf(name, "status %d", resp.StatusCode)
	}
	return Warnf(name, "status %d (reachable, unexpected response)", resp.StatusCode)
}
