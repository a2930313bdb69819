package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/logging"
	"github.com/davidlopes/tinge/internal/theme"
)

func testProvider(t *testing.T) Provider {
	t.Helper()

	c := color.FromRGB(30, 60, 120, 1.0)
	th, err := theme.Assign([]color.Candidate{c}, theme.WithRadiusSource(func() float64 { return 0.5 }))
	require.NoError(t, err)

	return ProviderFunc(func(context.Context) (theme.Theme, string, error) {
		return th, "logo.png", nil
	})
}

func newTestServer(t *testing.T, p Provider) *Server {
	t.Helper()
	return New(DefaultConfig(), logging.NewNop(), p)
}

func TestHandleTheme(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testProvider(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp themeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.Mode)
	assert.Equal(t, "logo.png", resp.Source)
	assert.Len(t, resp.Roles, len(theme.AllRoles()))
	assert.Equal(t, "#ff4444", resp.Roles["destructive"])
	assert.NotEmpty(t, resp.Radius)
}

func TestHandlePreview(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testProvider(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "--background:")
	assert.Contains(t, body, "--radius:")
	assert.Contains(t, body, "logo.png")
	assert.Contains(t, body, "destructive")
}

func TestProviderError(t *testing.T) {
	t.Parallel()

	failing := ProviderFunc(func(context.Context) (theme.Theme, string, error) {
		return theme.Theme{}, "", errors.New("no history")
	})
	srv := newTestServer(t, failing)

	for _, path := range []string{"/", "/api/theme"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testProvider(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	srv := New(cfg, logging.NewNop(), testProvider(t))

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173",
		rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	srv := New(cfg, logging.NewNop(), testProvider(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	cancel()
	require.NoError(t, <-done)
}
