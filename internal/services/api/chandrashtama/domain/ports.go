package domain

import "context"

// ServicePort is consumed by handlers
type ServicePort interface {
	Resolve(ctx context.Context, in ResolveInput) (ResolveOutput, error)
	Cycle(ctx context.Context) []CycleRow
}

// Enricher merges chandrashtama annotations into a decoded panchang payload
type Enricher interface {
	Enrich(payload map[string]any) map[string]any
}
