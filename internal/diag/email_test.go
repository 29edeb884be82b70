package diag

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
}

func TestCheckEmail_401IsReachable(t *testing.T) {
	srv := emailServer(t, http.StatusUnauthorized)
	defer srv.Close()

	results := CheckEmail(context.Background(), srv.URL, "re_testkey")
	require.Len(t, results, 1)
	assert.Equal(t, StatusPass, results[0].Status)
}

func TestCheckEmail_2xxPasses(t *testing.T) {
	srv := emailServer(t, http.StatusOK)
	defer srv.Close()

	results := CheckEmail(context.Background(), srv.URL, "re_testkey")
	require.Len(t, results, 1)
	assert.Equal(t, StatusPass, results[0].Status)
}

func TestCheckEmail_ServerErrorFails(t *testing.T) {
	srv := emailServer(t, http.StatusInternalServerError)
	defer srv.Close()

	results := CheckEmail(context.Background(), srv.URL, "re_testkey")
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
}

func TestCheckEmail_ConnectionRefusedFails(t *testing.T) {
	srv := emailServer(t, http.StatusOK)
	url := srv.URL
	srv.Close() // nothing listens here anymore

	results := CheckEmail(context.Background(), url, "re_testkey")
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Detail, "unreachable")
}

func TestCheckEmail_MissingKeyFailsFast(t *testing.T) {
	results := CheckEmail(context.Background(), DefaultEmailEndpoint, "")
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
}
