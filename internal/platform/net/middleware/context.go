package middleware

import (
	"net"
	"net/http"

	"panchang/internal/platform/logger"
	pnet "panchang/internal/platform/net"
)

// RequestContext copies the chi request id and client address onto the
// request context so logger.C and pnet getters see them downstream.
// Must run after RequestID and RealIP
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := pnet.RequestID(ctx)
			ctx = pnet.WithRequest(ctx, reqID, clientIP(r))
			ctx = logger.WithRequest(ctx, reqID)
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request) string {
	// RealIP leaves a bare ip; direct connections carry host:port
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
