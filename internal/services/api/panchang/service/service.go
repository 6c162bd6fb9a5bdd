// Package service contains the panchang fetch workflow
package service

import (
	"context"
	"strconv"

	"panchang/internal/core/almanac"
	"panchang/internal/core/displaytime"
	perr "panchang/internal/platform/errors"
	"panchang/internal/platform/logger"
	"panchang/internal/services/api/panchang/domain"

	"golang.org/x/sync/singleflight"
)

// ReasonMissingCredentials is reported when no provider is configured
const ReasonMissingCredentials = "Missing API credentials"

const defaultAyanamsa = 1

// Service defines the panchang service contract
type Service interface {
	domain.ServicePort
}

// Svc fetches a day from the provider, falling back to the embedded sample
type Svc struct {
	provider domain.Provider
	enricher domain.Enricher
	data     *almanac.Almanac
	group    singleflight.Group
}

// New constructs the service. A nil provider means credentials are missing
// and every request is served from the sample; a nil enricher skips enrichment
func New(p domain.Provider, e domain.Enricher, data *almanac.Almanac) *Svc {
	if data == nil {
		panic("panchang.Service requires a non nil almanac")
	}
	return &Svc{provider: p, enricher: e, data: data}
}

// Fetch resolves the query, loads the day and decorates it for display
func (s *Svc) Fetch(ctx context.Context, in domain.Input) (domain.Output, error) {
	q, err := s.Query(in)
	if err != nil {
		return domain.Output{}, err
	}
	log := logger.C(ctx)

	out := domain.Output{Source: domain.SourceProvider, Location: q.Location}
	var raw map[string]any
	switch {
	case s.provider == nil:
		log.Debug().Str("date", q.Date).Msg("panchang provider not configured, serving sample")
		raw = s.data.SamplePayload(q.Date, q.Latitude, q.Longitude)
		out.Source = domain.SourceFallback
		out.FallbackReason = ReasonMissingCredentials
	default:
		raw, err = s.load(ctx, q)
		if err != nil {
			logProviderFailure(log, err, q.Date)
			raw = s.data.SamplePayload(q.Date, q.Latitude, q.Longitude)
			out.Source = domain.SourceFallback
			out.Fallback = true
			out.Error = err.Error()
		}
	}

	payload := displaytime.AnnotatePayload(raw)
	if s.enricher != nil {
		payload = s.enricher.Enrich(payload)
	}
	out.Panchang = payload
	out.Rows = displaytime.Rows(payload, s.data.MuhurtaLabels)
	return out, nil
}

// Query fills defaults and resolves a named location into coordinates.
// Explicit coordinates win over the location's
func (s *Svc) Query(in domain.Input) (domain.Query, error) {
	q := domain.Query{Date: in.Date, Ayanamsa: in.Ayanamsa}
	if q.Ayanamsa == 0 {
		q.Ayanamsa = defaultAyanamsa
	}
	if in.Location != "" {
		loc, ok := s.data.Location(in.Location)
		if !ok {
			return q, perr.WithField(perr.NotFoundf("unknown location %q", in.Location), "location")
		}
		q.Location, q.Latitude, q.Longitude = loc.Name, loc.Latitude, loc.Longitude
	}
	switch {
	case in.Latitude != nil && in.Longitude != nil:
		q.Latitude, q.Longitude = *in.Latitude, *in.Longitude
	case in.Latitude != nil || in.Longitude != nil:
		return q, perr.WithField(perr.Validationf("latitude and longitude go together"), "longitude")
	case in.Location == "":
		return q, perr.WithField(perr.Validationf("latitude and longitude are required without a location"), "latitude")
	}
	return q, nil
}

// load coalesces identical in flight requests into one provider call.
// The shared payload is read only; AnnotatePayload copies it per caller
func (s *Svc) load(ctx context.Context, q domain.Query) (map[string]any, error) {
	ch := s.group.DoChan(Key(q), func() (any, error) {
		// one caller going away must not fail the others waiting on it
		return s.provider.Panchang(context.WithoutCancel(ctx), q.Date, q.Latitude, q.Longitude, q.Ayanamsa)
	})
	select {
	case <-ctx.Done():
		return nil, perr.FromContext(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]any), nil
	}
}

// Key identifies a query for request coalescing
func Key(q domain.Query) string {
	return q.Date + "|" + coord(q.Latitude) + "|" + coord(q.Longitude) + "|" + strconv.Itoa(q.Ayanamsa)
}

func coord(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

// logProviderFailure reports a failed provider call. Rejected credentials are
// an operator problem and log at error; everything else is a warning
func logProviderFailure(l *logger.Logger, err error, date string) {
	ev := l.Warn()
	if perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		ev = l.Error()
	}
	if e, ok := perr.As(err); ok && e.Op() != "" {
		ev = ev.Str("op", e.Op())
	}
	ev.Err(err).
		Str("cause", perr.Root(err).Error()).
		Str("date", date).
		Msg("panchang provider failed, serving sample")
}
