// Package domain holds DTOs for recommendations http and service contracts
package domain

import "panchang/internal/core/almanac"

// Sources reported in Output.Source
const (
	SourceLLM      = "mistral"
	SourceFallback = "fallback"
)

// Panchangam is the day summary the client already displays
type Panchangam struct {
	Date      string `json:"date" validate:"required,max=32" example:"2024-01-01"`
	Weekday   string `json:"weekday,omitempty" validate:"max=64" example:"புதன்"`
	Nakshatra string `json:"nakshatra,omitempty" validate:"max=128" example:"அஸ்வினி"`
	Tithi     string `json:"tithi,omitempty" validate:"max=128" example:"சஷ்டி"`
	Yoga      string `json:"yoga,omitempty" validate:"max=128" example:"சித்த"`
	Karana    string `json:"karana,omitempty" validate:"max=128" example:"பவ"`
	Sunrise   string `json:"sunrise,omitempty" validate:"max=64" example:"06:15"`
	Sunset    string `json:"sunset,omitempty" validate:"max=64" example:"18:30"`
	Location  string `json:"location,omitempty" validate:"max=64" example:"Chennai"`
}

// Input asks for recommendations for one audience
type Input struct {
	Panchangam Panchangam `json:"panchangam" validate:"required"`
	Category   string     `json:"category" validate:"required,max=32" example:"student"`
}

// Output is the advice for the day
type Output struct {
	Category  string          `json:"category" example:"student"`
	Weekday   almanac.Weekday `json:"weekday"`
	Favorable []string        `json:"favorable"`
	Avoid     []string        `json:"avoid"`
	Insight   string          `json:"insight"`
	Summary   string          `json:"summary"`
	Source    string          `json:"source" example:"fallback"`
}

// Advice is the JSON object the model is asked to return
type Advice struct {
	Favorable []string `json:"favorable"`
	Avoid     []string `json:"avoid"`
	Insight   string   `json:"insight"`
}
