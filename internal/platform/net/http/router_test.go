package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"panchang/internal/platform/config"
	phttp "panchang/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func serve(r phttp.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_AdapterPlumbing(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")

	optCalled := false
	srv := phttp.NewServer(config.New(), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("addr %q", srv.Addr())
	}

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(g phttp.Router) {
		g.Get("/group/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})
	r.Route("/api", func(api phttp.Router) {
		api.Post("/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
		api.Method(http.MethodPut, "/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		api.Route("/nested", func(n phttp.Router) {
			n.Head("/h", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			n.Options("/h", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
		})
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

	if rec := serve(r, "GET", "/group/ping"); rec.Body.String() != "pong" || rec.Header().Get("X-MW") != "yes" {
		t.Fatalf("group route body=%q mw=%q", rec.Body.String(), rec.Header().Get("X-MW"))
	}
	checks := []struct {
		method, path string
		want         int
	}{
		{"POST", "/api/m", http.StatusCreated},
		{"PUT", "/api/m", http.StatusAccepted},
		{"HEAD", "/api/nested/h", http.StatusOK},
		{"OPTIONS", "/api/nested/h", http.StatusNoContent},
		{"GET", "/raw", http.StatusTeapot},
		{"GET", "/missing", http.StatusNotFound},
	}
	for _, c := range checks {
		if rec := serve(r, c.method, c.path); rec.Code != c.want {
			t.Fatalf("%s %s = %d want %d", c.method, c.path, rec.Code, c.want)
		}
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	t.Setenv("SHUTDOWN_GRACE", "1s")

	srv := phttp.NewServer(config.New())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	t.Setenv("API_PORT", "bad-address")

	srv := phttp.NewServer(config.New())
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestMountProfiler(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", true)

	if rec := serve(r, "GET", "/debug/pprof/"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/, got %d", rec.Code)
	}
	if rec := serve(r, "GET", "/debug/pprof/cmdline"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/cmdline, got %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	if rec := serve(off, "GET", "/debug/pprof/"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}
}

func TestMountSwagger(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountSwagger(r, "/docs/", "/docs/doc.json", true)
	if rec := serve(r, "GET", "/docs/index.html"); rec.Code != http.StatusOK {
		t.Fatalf("expected swagger UI, got %d", rec.Code)
	}
	if rec := serve(r, "GET", "/docs"); rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected redirect from bare prefix, got %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountSwagger(off, "/docs", "", false)
	if rec := serve(off, "GET", "/docs/index.html"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled swagger should 404, got %d", rec.Code)
	}
}
