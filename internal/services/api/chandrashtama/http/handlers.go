// Package http provides http transport for chandrashtama
package http

import (
	stdhttp "net/http"

	"panchang/internal/modkit/httpkit"
	"panchang/internal/services/api/chandrashtama/domain"
)

// Register mounts chandrashtama endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/", h.resolve)
	httpkit.Get(r, "/cycle", h.cycle)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /chandrashtama Chandrashtama chandrashtamaResolve
// @Summary Cautionary nakshatra for each window of a day
// @Tags Chandrashtama
// @Accept json
// @Produce json
// @Param payload body domain.ResolveInput true "Nakshatra windows"
// @Success 200 {object} domain.ResolveOutput "ok"
// @Router /chandrashtama [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

// swagger:route GET /chandrashtama/cycle Chandrashtama chandrashtamaCycle
// @Summary The 27 nakshatra cycle with cautionary partners
// @Tags Chandrashtama
// @Produce json
// @Success 200 {array} domain.CycleRow "ok"
// @Router /chandrashtama/cycle [get]
func (h *handlers) cycle(r *stdhttp.Request) (any, error) {
	return h.svc.Cycle(r.Context()), nil
}
