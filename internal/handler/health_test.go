package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("No Dependencies", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("All Healthy", func(t *testing.T) {
		db := &MockHealthChecker{}
		db.On("CheckHealth", mock.Anything).Return(nil)
		cache := &MockHealthChecker{}
		cache.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(map[string]HealthChecker{"database": db, "redis": cache}).
			ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		db := &MockHealthChecker{}
		db.On("CheckHealth", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(map[string]HealthChecker{"database": db}).
			ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"database dependency check failed"`)
		db.AssertExpectations(t)
	})

	t.Run("Check Receives Deadline", func(t *testing.T) {
		var hadDeadline bool
		check := HealthCheckFunc(func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		})

		w := httptest.NewRecorder()
		HandleReadyz(map[string]HealthChecker{"redis": check}).
			ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hadDeadline)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"go_version"`)
}
