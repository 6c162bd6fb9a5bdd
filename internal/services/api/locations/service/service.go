// Package service lists the known locations
package service

import (
	"context"

	"panchang/internal/core/almanac"
	"panchang/internal/services/api/locations/domain"
)

// Svc serves locations from the almanac
type Svc struct{ data *almanac.Almanac }

// New constructs the service
func New(data *almanac.Almanac) *Svc { return &Svc{data: data} }

// List returns the locations in almanac order
func (s *Svc) List(context.Context) []domain.Location {
	out := make([]domain.Location, 0, len(s.data.Locations))
	for _, l := range s.data.Locations {
		out = append(out, domain.Location(l))
	}
	return out
}
