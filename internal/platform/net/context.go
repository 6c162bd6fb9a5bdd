// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyClientIP ctxKey = "client_ip"
	keyLocation ctxKey = "location"
)

// WithRequest annotates context with the request id and the caller's address
func WithRequest(ctx context.Context, reqID, clientIP string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if clientIP != "" {
		ctx = context.WithValue(ctx, keyClientIP, clientIP)
	}
	return ctx
}

// WithLocation annotates context with the display name of the location a request is about
func WithLocation(ctx context.Context, name string) context.Context {
	if name != "" {
		ctx = context.WithValue(ctx, keyLocation, name)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// ClientIP returns the caller address on the context if present
func ClientIP(ctx context.Context) string {
	if v, ok := ctx.Value(keyClientIP).(string); ok {
		return v
	}
	return ""
}

// Location returns the location name on the context if present
func Location(ctx context.Context) string {
	if v, ok := ctx.Value(keyLocation).(string); ok {
		return v
	}
	return ""
}
