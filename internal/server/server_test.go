package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/handler"
)

type fakeQuoter struct{}

func (fakeQuoter) Quote(_ context.Context, mode domain.GridMode, profile string) (domain.PriceBreakdown, error) {
	return domain.PriceBreakdown{Mode: mode, Profile: profile, Price: 1.13}, nil
}

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func newTestRouter(checks map[string]handler.HealthChecker) http.Handler {
	return NewRouter(Options{
		CORSOrigins:  []string{"https://play.example"},
		HealthChecks: checks,
	}, nil, nil, fakeQuoter{})
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOpts), path)
	}
}

func TestRouter_ReadyzReportsFailedDependency(t *testing.T) {
	router := newTestRouter(map[string]handler.HealthChecker{
		"redis": handler.HealthCheckFunc(func(context.Context) error { return assert.AnError }),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Price(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/price?mode=3x3&volatility=low", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"three_by_three"`)
	assert.Contains(t, rec.Body.String(), `"profile":"low"`)
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest("OPTIONS", "/api/v1/spin", nil)
	req.Header.Set("Origin", "https://play.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "https://play.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
