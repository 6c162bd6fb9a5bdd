// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"panchang/internal/core/nakshatra"
	"panchang/internal/core/version"
	"panchang/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies. A nil Provider or LLM means the
// adapter is not configured and its check is skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Now         func() time.Time
	Provider    Pinger
	LLM         Pinger
	Timeout     time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Timeout <= 0 {
		d.Timeout = 3 * time.Second
	}
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"panchang-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"prokerala"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"prokerala rejected client credentials"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name      string `json:"name"    example:"panchang-api"`
	Started   string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime    int64  `json:"uptime"  example:"300"`
	CycleSize int    `json:"cycle_size" example:"27"`
	Offset    int    `json:"chandrashtama_offset" example:"11"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with upstream checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.Timeout)
	defer cancel()

	check := func(name string, p Pinger) ReadyCheck {
		if p == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if err := p.Ping(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}

	checks := []ReadyCheck{
		check("prokerala", h.deps.Provider),
		check("mistral", h.deps.LLM),
	}

	// the API answers from fallbacks, so a failing upstream only degrades it
	overall := "ok"
	for _, c := range checks {
		if c.Status != "ok" {
			overall = "degraded"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:      h.deps.ServiceName,
		Started:   h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:    int64(uptime / time.Second),
		CycleSize: nakshatra.Size,
		Offset:    nakshatra.Offset,
	}, nil
}
