package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarajohn/greek-text-utils/internal/web/middleware"
)

func newServer(t *testing.T, perMinute int) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := middleware.NewRateLimiter(ctx, perMinute, time.Minute)
	srv := httptest.NewServer(NewRouter(log, limiter, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestRouterConvert(t *testing.T) {
	srv := newServer(t, 10)

	resp, err := http.Post(srv.URL+"/api/v1/convert", "application/json",
		strings.NewReader(`{"scheme":"greeklish","text":"ψαρι"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "psari", body["output"])
}

func TestRouterSchemesIsCacheable(t *testing.T) {
	srv := newServer(t, 10)

	resp, err := http.Get(srv.URL + "/api/v1/schemes")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "max-age")
}

func TestRouterRateLimitsConvert(t *testing.T) {
	srv := newServer(t, 1)

	post := func() int {
		resp, err := http.Post(srv.URL+"/api/v1/convert", "application/json",
			strings.NewReader(`{"scheme":"greek","text":"a"}`))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestRouterMethodNotAllowed(t *testing.T) {
	srv := newServer(t, 10)

	resp, err := http.Get(srv.URL + "/api/v1/convert")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouterMetrics(t *testing.T) {
	srv := newServer(t, 10)

	resp, err := http.Post(srv.URL+"/api/v1/convert", "application/json",
		strings.NewReader(`{"scheme":"sanitize","text":"Αθήνα"}`))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "greekutils_conversions_total")
	assert.Contains(t, string(raw), "greekutils_http_requests_total")
}
