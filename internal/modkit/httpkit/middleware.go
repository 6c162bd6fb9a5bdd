package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"panchang/internal/platform/config"
	"panchang/internal/platform/net/middleware"
)

// StackOptions tunes the shared middleware bundle
type StackOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	SlowRequest    time.Duration
}

// StackOptionsFrom reads the stack tuning from an api scoped config view
func StackOptionsFrom(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		RequestTimeout: cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", 2*time.Second),
	}
}

// CommonStack returns the baseline middleware slice for the versioned api
// order matters: ids and client ip land on the context before anything logs
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestContext(),

		// observability, then safety so panics still get an access log line
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.RequestTimeout),
	}
}
