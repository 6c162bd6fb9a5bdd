package module

import "panchang/internal/services/api/panchang/domain"

// Ports are the cross module dependencies injected with modkit.WithPorts
type Ports struct {
	Provider domain.Provider
	Enricher domain.Enricher
}

// Exports is what this module offers other modules
type Exports struct {
	Service domain.ServicePort
}

// Ports returns the module exports
func (m *Module) Ports() any { return Exports{Service: m.svc} }
