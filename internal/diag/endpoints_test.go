package diag

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEndpoints_AllUp(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		switch r.Method {
		case http.MethodPost:
			gotBody = string(b)
		default:
			// Bodyless probes must not send a payload.
			assert.Empty(t, b, "%s %s carried a body", r.Method, r.URL.Path)
			assert.Zero(t, r.ContentLength)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	results := CheckEndpoints(context.Background(), nil, srv.URL, DefaultEndpoints())
	require.Len(t, results, 3)
	for _, res := range results {
		assert.Equal(t, StatusPass, res.Status, res.Name)
	}
	assert.JSONEq(t, `{"skip":0,"limit":10}`, gotBody)
}

func TestCheckEndpoints_Non2xxWarnsNotFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	results := CheckEndpoints(context.Background(), nil, srv.URL, []Endpoint{
		{Method: http.MethodGet, Path: "/"},
	})
	require.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.True(t, results[0].Status.Passed())
}

func TestCheckEndpoints_TransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	results := CheckEndpoints(context.Background(), nil, url, []Endpoint{
		{Method: http.MethodGet, Path: "/"},
	})
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
}
