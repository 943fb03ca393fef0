package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"success", http.StatusOK},
		{"conflict", http.StatusConflict},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/spin", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOpts))
			assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
			assert.Equal(t, HeaderValueNoReferrer, rec.Header().Get(HeaderReferrerPolicy))
			assert.Equal(t, HeaderValueNoStore, rec.Header().Get(HeaderCacheControl))
			assert.Equal(t, HeaderValueAPIOnlyCSP, rec.Header().Get(HeaderCSP))
		})
	}
}
