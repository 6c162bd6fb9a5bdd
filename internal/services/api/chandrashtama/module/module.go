// Package module wires chandrashtama into the API using modkit
package module

import (
	"net/http"

	modkit "panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	str "panchang/internal/platform/strings"
	chhttp "panchang/internal/services/api/chandrashtama/http"
	chsvc "panchang/internal/services/api/chandrashtama/service"
)

// Module implements the chandrashtama module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	svc *chsvc.Svc
}

// New constructs the chandrashtama module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("chandrashtama"), modkit.WithPrefix("/chandrashtama")}, opts...)...)

	svc := chsvc.New(nil)
	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Enricher: svc},
		svc:    svc,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		chhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
