// Package domain holds DTOs for chandrashtama http and service contracts
package domain

import "panchang/internal/core/chandrashtama"

// ResolveInput is a batch of nakshatra windows in day order
type ResolveInput struct {
	Entries []chandrashtama.Entry `json:"entries" validate:"required,max=64,dive"`
}

// ResolveOutput carries the per entry results and both warning projections
type ResolveOutput struct {
	Chandrashtama   []chandrashtama.Result `json:"chandrashtama"`
	Warnings        []string               `json:"chandrashtamaWarnings"`
	WarningsEnglish []string               `json:"chandrashtamaWarningsEnglish"`
}

// CycleRow is one position of the nakshatra cycle and its cautionary partner
type CycleRow struct {
	Index                int    `json:"index" example:"0"`
	Tamil                string `json:"tamil" example:"அஸ்வினி"`
	English              string `json:"english" example:"Ashwini"`
	ChandrashtamaIndex   int    `json:"chandrashtamaIndex" example:"11"`
	ChandrashtamaTamil   string `json:"chandrashtamaTamil" example:"உத்திரம்"`
	ChandrashtamaEnglish string `json:"chandrashtamaEnglish" example:"Uttara Phalguni"`
}
