package module

import "panchang/internal/services/api/chandrashtama/domain"

// Ports is the port set other modules pull with module.MustPortsOf
type Ports struct {
	Enricher domain.Enricher
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
