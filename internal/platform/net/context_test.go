package net_test

import (
	"context"
	"testing"

	pnet "panchang/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both values", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "10.0.0.7")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.ClientIP(ctx); got != "10.0.0.7" {
			t.Fatalf("ClientIP got %q want %q", got, "10.0.0.7")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.ClientIP(ctx); got != "" {
			t.Fatalf("ClientIP got %q want empty", got)
		}
	})

	t.Run("no values returns same ctx", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both values empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestWithLocation(t *testing.T) {
	base := context.Background()
	if pnet.WithLocation(base, "") != base {
		t.Fatalf("empty location should not change ctx")
	}
	ctx := pnet.WithLocation(base, "Chennai")
	if got := pnet.Location(ctx); got != "Chennai" {
		t.Fatalf("Location got %q", got)
	}
	if got := pnet.Location(base); got != "" {
		t.Fatalf("Location on bare ctx got %q", got)
	}
}
