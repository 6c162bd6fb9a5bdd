package module

import "panchang/internal/services/api/recommendations/domain"

// Ports are the cross module dependencies injected with modkit.WithPorts
type Ports struct {
	Advisor domain.Advisor
}

// Ports returns nil; nothing consumes recommendations across modules
func (m *Module) Ports() any { return nil }
