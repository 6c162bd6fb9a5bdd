package module

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	phttp "panchang/internal/platform/net/http"
	metahttp "panchang/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, m modkit.Module, path string, into any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPIV1(r, nil, m.MountRoutes)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s status %d body %s", path, rec.Code, rec.Body.String())
	}
	env := struct {
		Data any `json:"data"`
	}{Data: into}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name     string
		ports    Ports
		overall  string
		statuses [2]string
	}{
		{"unconfigured", Ports{}, "degraded", [2]string{"skipped", "skipped"}},
		{"all ok", Ports{Provider: pinger{}, LLM: pinger{}}, "ok", [2]string{"ok", "ok"}},
		{"provider down", Ports{Provider: pinger{errors.New("token endpoint 503")}, LLM: pinger{}}, "degraded", [2]string{"fail", "ok"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out metahttp.ReadyResponse
			get(t, New(modkit.Deps{}, modkit.WithPorts(tc.ports)), "/api/v1/meta/ready", &out)
			if out.Status != tc.overall {
				t.Fatalf("overall %q want %q", out.Status, tc.overall)
			}
			if len(out.Checks) != 2 || out.Checks[0].Name != "prokerala" || out.Checks[1].Name != "mistral" {
				t.Fatalf("checks %+v", out.Checks)
			}
			for i, want := range tc.statuses {
				if out.Checks[i].Status != want {
					t.Fatalf("check %s = %q want %q", out.Checks[i].Name, out.Checks[i].Status, want)
				}
			}
			if tc.name == "provider down" && out.Checks[0].Error != "token endpoint 503" {
				t.Fatalf("error not reported: %+v", out.Checks[0])
			}
		})
	}
}

func TestServiceAndHealth(t *testing.T) {
	start := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)
	now := start
	m := New(modkit.Deps{Now: func() time.Time { return now }})
	now = start.Add(90 * time.Second)

	var svc metahttp.ServiceResponse
	get(t, m, "/api/v1/meta/service", &svc)
	if svc.Name != "panchang-api" || svc.Uptime != 90 || svc.CycleSize != 27 || svc.Offset != 11 {
		t.Fatalf("service %+v", svc)
	}

	var h metahttp.HealthResponse
	get(t, m, "/api/v1/meta/health", &h)
	if !h.OK || h.Started != "2025-03-14T06:00:00Z" || h.Now != "2025-03-14T06:01:30Z" {
		t.Fatalf("health %+v", h)
	}

	var v map[string]any
	get(t, New(modkit.Deps{}, modkit.WithPorts(Ports{ServiceName: "panchang-cli"})), "/api/v1/meta/version", &v)
	if v["service"] != "panchang-cli" {
		t.Fatalf("version %+v", v)
	}
}
