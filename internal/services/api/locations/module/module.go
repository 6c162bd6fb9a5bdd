// Package module wires the locations list into the API
package module

import (
	"net/http"

	modkit "panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	str "panchang/internal/platform/strings"
	lhttp "panchang/internal/services/api/locations/http"
	lsvc "panchang/internal/services/api/locations/service"
)

// Module implements the locations module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *lsvc.Svc
}

// New constructs the locations module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("locations"), modkit.WithPrefix("/locations")}, opts...)...)
	return &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, svc: lsvc.New(deps.Data())}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		lhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
