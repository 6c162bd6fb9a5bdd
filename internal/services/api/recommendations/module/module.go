// Package module wires recommendations into the API using modkit
package module

import (
	"net/http"

	modkit "panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	str "panchang/internal/platform/strings"
	rhttp "panchang/internal/services/api/recommendations/http"
	rsvc "panchang/internal/services/api/recommendations/service"
)

// Module implements the recommendations module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	svc *rsvc.Svc
}

// New constructs the recommendations module. The advisor arrives through
// modkit.WithPorts(Ports{...}) and may be nil
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("recommendations"), modkit.WithPrefix("/recommendations")}, opts...)...)

	in, _ := b.Ports.(Ports)
	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    rsvc.MustNew(in.Advisor, deps.Data()),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		rhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
