// Package http provides http transport for recommendations
package http

import (
	stdhttp "net/http"

	"panchang/internal/modkit/httpkit"
	"panchang/internal/services/api/recommendations/domain"
)

// Register mounts recommendation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/", h.recommend)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /recommendations Recommendations recommendationsForDay
// @Summary Favorable and avoid lists for a day and audience
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Day summary and category"
// @Success 200 {object} domain.Output "ok"
// @Router /recommendations [post]
func (h *handlers) recommend(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Recommend(r.Context(), in)
}
