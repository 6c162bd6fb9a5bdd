// Package http provides http transport for panchang
package http

import (
	stdhttp "net/http"

	"panchang/internal/modkit/httpkit"
	"panchang/internal/services/api/panchang/domain"
)

// Register mounts panchang endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// provider day, or the sample when the provider is missing or failing
	httpkit.PostJSON(r, "/", h.fetch)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /panchang Panchang panchangFetch
// @Summary Panchang day with display times and chandrashtama
// @Tags Panchang
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Day and place"
// @Success 200 {object} domain.Output "ok"
// @Failure 400 {object} errors.Wire "validation"
// @Failure 404 {object} errors.Wire "unknown location"
// @Router /panchang [post]
func (h *handlers) fetch(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Fetch(r.Context(), in)
}
