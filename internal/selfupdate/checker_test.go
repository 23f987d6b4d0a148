package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/abhisek/focusbar/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)

	result, err = checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v1.2.0", "v1.0.0", true},
		{"v1.0.0", "v1.0.0", false},
		{"v1.0.0", "v1.2.0", false},
		{"1.2.0", "1.0.0", true}, // missing v prefix normalized
		{"v2.0.0-rc.1", "v1.9.9", true},
		{"v1.2.0", "(devel)", false},
		{"v1.2.0", "", false},
		{"not-a-version", "v1.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isNewer(tt.latest, tt.current),
			"isNewer(%q, %q)", tt.latest, tt.current)
	}
}
