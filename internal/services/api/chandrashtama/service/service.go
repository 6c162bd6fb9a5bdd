// Package service contains chandrashtama workflows
package service

import (
	"context"

	"panchang/internal/core/chandrashtama"
	"panchang/internal/core/langhint"
	"panchang/internal/core/nakshatra"
	"panchang/internal/platform/logger"
	"panchang/internal/services/api/chandrashtama/domain"
)

// Service defines the chandrashtama service contract
type Service interface {
	domain.ServicePort
	domain.Enricher
}

// Svc implements the chandrashtama service over a core engine
type Svc struct {
	engine *chandrashtama.Engine
}

// New constructs a service; a nil engine uses the canonical cycle
func New(engine *chandrashtama.Engine) *Svc {
	if engine == nil {
		engine = chandrashtama.Default()
	}
	return &Svc{engine: engine}
}

// Resolve annotates the entries in order
func (s *Svc) Resolve(ctx context.Context, in domain.ResolveInput) (domain.ResolveOutput, error) {
	res := s.engine.Resolve(in.Entries)
	logUnresolved(logger.C(ctx), res)
	return domain.ResolveOutput{
		Chandrashtama:   res,
		Warnings:        chandrashtama.Warnings(res),
		WarningsEnglish: chandrashtama.WarningsEnglish(res),
	}, nil
}

// Cycle lists every nakshatra with its cautionary partner
func (s *Svc) Cycle(context.Context) []domain.CycleRow {
	cycle := nakshatra.Cycle()
	out := make([]domain.CycleRow, 0, len(cycle))
	for _, n := range cycle {
		ci := nakshatra.ChandrashtamaIndex(n.Index)
		target, _ := nakshatra.At(ci)
		out = append(out, domain.CycleRow{
			Index:                n.Index,
			Tamil:                n.Tamil,
			English:              n.English,
			ChandrashtamaIndex:   ci,
			ChandrashtamaTamil:   target.Tamil,
			ChandrashtamaEnglish: target.English,
		})
	}
	return out
}

// Enrich merges results for the payload's own nakshatra windows
func (s *Svc) Enrich(payload map[string]any) map[string]any {
	out := s.engine.Enrich(payload)
	if res, ok := out[chandrashtama.KeyResults].([]chandrashtama.Result); ok {
		logUnresolved(logger.Named("chandrashtama"), res)
	}
	return out
}

func logUnresolved(l *logger.Logger, res []chandrashtama.Result) {
	for _, r := range res {
		if r.Strategy == nakshatra.Unresolved {
			l.Warn().
				Str("nakshatra", r.CurrentNakshatra).
				Str("script", langhint.Script(r.CurrentNakshatra)).
				Msg("nakshatra not resolved")
		}
	}
}
