package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "panchang/internal/platform/errors"
	pnet "panchang/internal/platform/net"
	"panchang/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRequestContext_PropagatesIDs(t *testing.T) {
	var gotID, gotIP string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = pnet.RequestID(r.Context())
		gotIP = pnet.ClientIP(r.Context())
	})
	h := chain(next, middleware.RealIP(), middleware.RequestID(), middleware.RequestContext())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if gotID != "rid-42" {
		t.Fatalf("request id %q", gotID)
	}
	if gotIP != "203.0.113.9" {
		t.Fatalf("client ip %q", gotIP)
	}
	if rr.Header().Get("X-Request-ID") != "rid-42" {
		t.Fatalf("response header %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestContext_HostPortRemoteAddr(t *testing.T) {
	var gotIP string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { gotIP = pnet.ClientIP(r.Context()) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	middleware.RequestContext()(next).ServeHTTP(httptest.NewRecorder(), req)
	if gotIP != "192.0.2.1" {
		t.Fatalf("client ip %q", gotIP)
	}
}

func TestRecoverJSON(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	h := chain(next, middleware.RequestID(), middleware.RequestContext(), middleware.RecoverJSON)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-p")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID != "rid-p" {
		t.Fatalf("bad body %+v", body)
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
	rr := httptest.NewRecorder()
	middleware.RecoverJSON(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestAccessLogZerolog_PassesResponseThrough(t *testing.T) {
	cases := []struct {
		name   string
		opt    middleware.AccessLogOptions
		status int
	}{
		{"plain", middleware.AccessLogOptions{}, http.StatusCreated},
		{"slow", middleware.AccessLogOptions{Slow: time.Nanosecond}, http.StatusOK},
		{"server error", middleware.AccessLogOptions{}, http.StatusBadGateway},
	}
	for _, c := range cases {
		r := chi.NewRouter()
		r.Use(middleware.AccessLogZerolog(c.opt))
		r.Get("/x/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(c.status)
			_, _ = w.Write([]byte("hi"))
			_, _ = w.Write([]byte("!"))
		})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x/1", nil))
		if rr.Code != c.status || rr.Body.String() != "hi!" {
			t.Fatalf("%s: code=%d body=%q", c.name, rr.Code, rr.Body.String())
		}
	}
}

func TestCompress_DeflateWhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Repeat(`{"nakshatra":"ரோகிணி"}`, 200))
	})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate")
	middleware.Compress(flate.DefaultCompression)(h).ServeHTTP(rr, req)
	if rr.Header().Get("Content-Encoding") != "deflate" {
		t.Fatalf("expected deflate encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
}

func TestHeartbeat(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := middleware.Heartbeat("/ping")(next)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat status %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("non heartbeat status %d", rr.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:3000"}})(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/panchang", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/panchang", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestWrappers_NonNil(t *testing.T) {
	if middleware.NoCache() == nil || middleware.Timeout(time.Second) == nil {
		t.Fatalf("nil wrapper")
	}
}
