package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientGuardMiddleware answers 429 once a client exceeds its rate limit and
// counts every 4xx the client receives.
func ClientGuardMiddleware(proxies *TrustedProxies, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)
			if !monitor.Allow(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if status := ww.Status(); status >= http.StatusBadRequest && status < http.StatusInternalServerError {
				monitor.Reject(ip)
			}
		})
	}
}

// SecurityHeadersMiddleware marks every response as non-cacheable JSON that
// must not be sniffed, framed or carry a referrer
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := [][2]string{
		{HeaderContentTypeOpts, HeaderValueNoSniff},
		{HeaderFrameOptions, HeaderValueDeny},
		{HeaderReferrerPolicy, HeaderValueNoReferrer},
		{HeaderCSP, HeaderValueAPIOnlyCSP},
		{HeaderCacheControl, HeaderValueNoStore},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range headers {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
