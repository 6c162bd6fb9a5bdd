// Package module wires panchang into the API using modkit
package module

import (
	"net/http"

	modkit "panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	str "panchang/internal/platform/strings"
	phttp "panchang/internal/services/api/panchang/http"
	psvc "panchang/internal/services/api/panchang/service"
)

// Module implements the panchang module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	svc *psvc.Svc
}

// New constructs the panchang module. Provider and Enricher arrive through
// modkit.WithPorts(Ports{...}); either may be left nil
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("panchang"), modkit.WithPrefix("/panchang")}, opts...)...)

	in, _ := b.Ports.(Ports)
	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    psvc.New(in.Provider, in.Enricher, deps.Data()),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		phttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
