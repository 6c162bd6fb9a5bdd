// Package service builds daily recommendations from the almanac and, when
// configured, a language model
package service

import (
	"context"
	"slices"
	"strings"
	"text/template"

	"panchang/internal/core/almanac"
	perr "panchang/internal/platform/errors"
	"panchang/internal/platform/logger"
	"panchang/internal/services/api/recommendations/domain"

	"golang.org/x/sync/errgroup"
)

// Service defines the recommendations service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the recommendations service
type Svc struct {
	advisor  domain.Advisor
	data     *almanac.Almanac
	insights map[string]*template.Template
	prompt   *template.Template
}

type insightData struct {
	Day       almanac.Weekday
	Date      string
	Nakshatra string
	Tithi     string
	Yoga      string
}

type promptData struct {
	Date      string
	Weekday   string
	Nakshatra string
	Tithi     string
	Yoga      string
	Karana    string
	Category  string
}

// New parses the almanac templates. A nil advisor serves the static lists only
func New(advisor domain.Advisor, data *almanac.Almanac) (*Svc, error) {
	if data == nil {
		return nil, perr.Internalf("recommendations requires an almanac")
	}
	s := &Svc{advisor: advisor, data: data, insights: make(map[string]*template.Template, len(data.Categories))}
	for _, c := range data.Categories {
		t, err := template.New(c.Key).Option("missingkey=error").Parse(c.Insight)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "insight template %s", c.Key)
		}
		s.insights[c.Key] = t
	}
	p, err := template.New("prompt").Option("missingkey=error").Parse(data.Prompt.User)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "prompt template")
	}
	s.prompt = p
	return s, nil
}

// MustNew is New for wiring code
func MustNew(advisor domain.Advisor, data *almanac.Almanac) *Svc {
	s, err := New(advisor, data)
	if err != nil {
		panic(err)
	}
	return s
}

// Recommend renders the local insight and, in parallel, asks the advisor for
// favorable and avoid lists. Any advisor failure falls back to the static lists
func (s *Svc) Recommend(ctx context.Context, in domain.Input) (domain.Output, error) {
	cat, known := s.data.Category(strings.ToLower(strings.TrimSpace(in.Category)))
	day := s.data.Weekday(in.Panchangam.Weekday)
	log := logger.C(ctx)
	if !known {
		log.Debug().Str("category", in.Category).Str("using", cat.Key).Msg("unknown category")
	}

	var (
		insight string
		advice  *domain.Advice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		insight, err = s.insight(cat, day, in.Panchangam)
		return err
	})
	if s.advisor != nil {
		g.Go(func() error {
			a, err := s.ask(gctx, cat, in.Panchangam)
			if err != nil {
				log.Warn().Err(err).Str("category", cat.Key).Msg("advisor failed, using fallback lists")
				return nil
			}
			advice = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Output{}, err
	}

	out := domain.Output{
		Category:  cat.Key,
		Weekday:   day,
		Favorable: slices.Clone(cat.Favorable),
		Avoid:     slices.Clone(cat.Avoid),
		Insight:   insight,
		Summary:   cat.Summary,
		Source:    domain.SourceFallback,
	}
	if advice != nil {
		out.Favorable, out.Avoid = advice.Favorable, advice.Avoid
		out.Source = domain.SourceLLM
	}
	return out, nil
}

func (s *Svc) insight(cat almanac.Category, day almanac.Weekday, p domain.Panchangam) (string, error) {
	var b strings.Builder
	err := s.insights[cat.Key].Execute(&b, insightData{
		Day:       day,
		Date:      p.Date,
		Nakshatra: p.Nakshatra,
		Tithi:     p.Tithi,
		Yoga:      p.Yoga,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "render insight %s", cat.Key)
	}
	return b.String(), nil
}

// Prompt renders the user message sent to the advisor
func (s *Svc) Prompt(category string, p domain.Panchangam) (string, error) {
	var b strings.Builder
	err := s.prompt.Execute(&b, promptData{
		Date:      p.Date,
		Weekday:   p.Weekday,
		Nakshatra: p.Nakshatra,
		Tithi:     p.Tithi,
		Yoga:      p.Yoga,
		Karana:    p.Karana,
		Category:  category,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "render prompt")
	}
	return b.String(), nil
}

func (s *Svc) ask(ctx context.Context, cat almanac.Category, p domain.Panchangam) (*domain.Advice, error) {
	user, err := s.Prompt(cat.Key, p)
	if err != nil {
		return nil, err
	}
	var a domain.Advice
	if err := s.advisor.CompleteJSON(ctx, s.data.Prompt.System, user, &a); err != nil {
		return nil, err
	}
	a.Favorable, a.Avoid = clean(a.Favorable), clean(a.Avoid)
	if len(a.Favorable) == 0 || len(a.Avoid) == 0 {
		return nil, perr.Upstreamf("advisor reply has %d favorable and %d avoid items", len(a.Favorable), len(a.Avoid))
	}
	return &a, nil
}

func clean(items []string) []string {
	out := items[:0:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
