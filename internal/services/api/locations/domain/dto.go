// Package domain holds DTOs for the locations endpoint
package domain

// Location is a named place the panchang endpoint accepts by name
type Location struct {
	Name      string  `json:"name" example:"Chennai"`
	Latitude  float64 `json:"latitude" example:"13.0827"`
	Longitude float64 `json:"longitude" example:"80.2707"`
}
