package domain

import "context"

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	Fetch(ctx context.Context, in Input) (Output, error)
}

// Provider returns the raw panchang payload for a day; prokerala.Client satisfies it
type Provider interface {
	Panchang(ctx context.Context, date string, lat, lon float64, ayanamsa int) (map[string]any, error)
}

// Enricher adds derived annotations to a payload without mutating it
type Enricher interface {
	Enrich(payload map[string]any) map[string]any
}
