// Package domain holds DTOs for panchang http and service contracts
package domain

import "panchang/internal/core/displaytime"

// Sources reported in Output.Source
const (
	SourceProvider = "prokerala"
	SourceFallback = "fallback"
)

// Input asks for one day at one place. Coordinates may be omitted when
// Location names a known place
type Input struct {
	Date      string   `json:"date" validate:"required,isodate" example:"2024-01-01"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90" example:"13.0827"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180" example:"80.2707"`
	Ayanamsa  int      `json:"ayanamsa,omitempty" validate:"omitempty,oneof=1 3 5" example:"1"`
	Location  string   `json:"location,omitempty" validate:"omitempty,max=64" example:"Chennai"`
}

// Query is a fully resolved Input
type Query struct {
	Date      string
	Latitude  float64
	Longitude float64
	Ayanamsa  int
	Location  string
}

// Output is the panchang day with its provenance
type Output struct {
	Source         string            `json:"source" example:"prokerala"`
	Fallback       bool              `json:"fallback" example:"false"`
	FallbackReason string            `json:"fallback_reason,omitempty" example:"Missing API credentials"`
	Error          string            `json:"error,omitempty"`
	Location       string            `json:"location,omitempty" example:"Chennai"`
	Panchang       map[string]any    `json:"panchang" swaggertype:"object"`
	Rows           []displaytime.Row `json:"rows"`
}
