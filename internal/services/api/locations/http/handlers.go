// Package http provides http transport for locations
package http

import (
	stdhttp "net/http"

	"panchang/internal/modkit/httpkit"
	lsvc "panchang/internal/services/api/locations/service"
)

// Register mounts the locations endpoint
func Register(r httpkit.Router, s *lsvc.Svc) {
	httpkit.Get(r, "/", func(req *stdhttp.Request) (any, error) { return list(req, s) })
}

// swagger:route GET /locations Locations locationsList
// @Summary Named places with coordinates
// @Tags Locations
// @Produce json
// @Success 200 {array} domain.Location "ok"
// @Router /locations [get]
func list(r *stdhttp.Request, s *lsvc.Svc) (any, error) {
	return s.List(r.Context()), nil
}
