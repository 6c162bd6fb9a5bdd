// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	modkit "panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	str "panchang/internal/platform/strings"

	metahttp "panchang/internal/services/api/meta/http"
)

// Ports are the adapters the readiness probe checks; either may be nil
type Ports struct {
	ServiceName string
	Provider    metahttp.Pinger
	LLM         metahttp.Pinger
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	hd     metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	in, _ := b.Ports.(Ports)
	now := deps.Clock()
	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		hd: metahttp.Deps{
			ServiceName: str.FirstNonEmpty(in.ServiceName, "panchang-api"),
			StartedAt:   now(),
			Now:         now,
			Provider:    in.Provider,
			LLM:         in.LLM,
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		metahttp.Register(rr, m.hd)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
