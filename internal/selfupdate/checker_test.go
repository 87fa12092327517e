package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/docent/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.1.0","html_url":"https://example.com/v2.1.0"}`, http.StatusOK)
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.3", result.CurrentVersion)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
	})

	t.Run("already current", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.0.3","html_url":"https://example.com/v2.0.3"}`, http.StatusOK)
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("dev build sees releases as updates", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.0.3","html_url":"https://example.com/v2.0.3"}`, http.StatusOK)
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("api error", func(t *testing.T) {
		server := releaseServer(t, `{"message":"rate limited"}`, http.StatusForbidden)
		checker := NewChecker(WithBaseURL(server.URL))

		_, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := releaseServer(t, `not json`, http.StatusOK)
		checker := NewChecker(WithBaseURL(server.URL))

		_, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.Error(t, err)
	})

	t.Run("missing tag", func(t *testing.T) {
		server := releaseServer(t, `{"html_url":"https://example.com"}`, http.StatusOK)
		checker := NewChecker(WithBaseURL(server.URL))

		_, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.Error(t, err)
	})
}
