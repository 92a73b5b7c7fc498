package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient()
	require.NotNil(t, client)
	require.NotNil(t, client.Client)

	assert.Equal(t, UserAgent, client.Header.Get("User-Agent"))
	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	var gotPath, gotOwner, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOwner = r.Header.Get("X-Owner-ID")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(
		WithBaseURL(srv.URL),
		WithTimeout(time.Second),
		WithHeader("X-Owner-ID", "owner-1"),
	)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/api/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/api/version", gotPath)
	assert.Equal(t, "owner-1", gotOwner)
	assert.Equal(t, UserAgent, gotAgent)
}

func TestWithTimeout_ZeroKeepsUnbounded(t *testing.T) {
	client := NewHTTPClient(WithTimeout(0))
	assert.Zero(t, client.GetClient().Timeout)
}
