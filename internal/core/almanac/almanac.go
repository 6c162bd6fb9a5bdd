// Package almanac loads the embedded reference data served alongside live
// provider results: the fallback panchangam, weekday and muhurta labels,
// per-category advice and the fixed location list
package almanac

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"panchang/internal/core/normalize"

	"gopkg.in/yaml.v3"
)

//go:embed almanac.yaml
var embedded []byte

// SampleOffset is the UTC offset stamped on the fallback datetime
const SampleOffset = "+05:30"

// Period is one named, time boxed entry (nakshatra, tithi, karana, yoga)
type Period struct {
	Name  string `yaml:"name" json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Muhurta is a keyed window such as rahu or yama
type Muhurta struct {
	Key   string `yaml:"key" json:"key"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Sample is the fallback panchangam day
type Sample struct {
	Vaara     string    `yaml:"vaara"`
	Sunrise   string    `yaml:"sunrise"`
	Sunset    string    `yaml:"sunset"`
	Nakshatra []Period  `yaml:"nakshatra"`
	Tithi     []Period  `yaml:"tithi"`
	Karana    []Period  `yaml:"karana"`
	Yoga      []Period  `yaml:"yoga"`
	Muhurta   []Muhurta `yaml:"muhurta"`
}

// Label pairs a payload key with its bilingual display label
type Label struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Weekday is a Tamil weekday with its English name and astrological description
type Weekday struct {
	Tamil       string   `yaml:"tamil" json:"tamil"`
	English     string   `yaml:"english" json:"english"`
	Description string   `yaml:"description" json:"description"`
	Aliases     []string `yaml:"aliases" json:"-"`
}

// Category is an audience for recommendations
type Category struct {
	Key       string   `yaml:"key" json:"key"`
	Label     string   `yaml:"label" json:"label"`
	Insight   string   `yaml:"insight" json:"-"`
	Summary   string   `yaml:"summary" json:"summary"`
	Favorable []string `yaml:"favorable" json:"favorable"`
	Avoid     []string `yaml:"avoid" json:"avoid"`
}

// Prompt holds the chat prompt templates for the recommendations model
type Prompt struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Location is a named coordinate pair
type Location struct {
	Name      string  `yaml:"name" json:"name"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

type unknownDay struct {
	English     string `yaml:"english"`
	Description string `yaml:"description"`
}

type rawAlmanac struct {
	Version         int        `yaml:"version"`
	Sample          Sample     `yaml:"sample"`
	MuhurtaLabels   []Label    `yaml:"muhurta_labels"`
	Weekdays        []Weekday  `yaml:"weekdays"`
	UnknownWeekday  unknownDay `yaml:"unknown_weekday"`
	DefaultCategory string     `yaml:"default_category"`
	Categories      []Category `yaml:"categories"`
	Prompt          Prompt     `yaml:"prompt"`
	Locations       []Location `yaml:"locations"`
}

// Almanac is the decoded reference data; treat it as read only
type Almanac struct {
	Version       int
	Sample        Sample
	MuhurtaLabels []Label
	Weekdays      []Weekday
	Categories    []Category
	Prompt        Prompt
	Locations     []Location

	unknown    unknownDay
	defaultCat string
	days       map[string]int // normalized tamil/alias/english -> Weekdays index
	cats       map[string]int
	places     map[string]int
}

var (
	loadOnce sync.Once
	loaded   *Almanac
	loadErr  error
)

// Load decodes the embedded almanac once and returns the shared value
func Load() (*Almanac, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(embedded)
	})
	return loaded, loadErr
}

// MustLoad is Load that panics on a malformed embed
func MustLoad() *Almanac {
	a, err := Load()
	if err != nil {
		panic(fmt.Errorf("almanac: %w", err))
	}
	return a
}

// Parse decodes and indexes an almanac document
func Parse(b []byte) (*Almanac, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var raw rawAlmanac
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("unsupported version %d", raw.Version)
	}
	if len(raw.Categories) == 0 {
		return nil, fmt.Errorf("no categories")
	}

	a := &Almanac{
		Version:       raw.Version,
		Sample:        raw.Sample,
		MuhurtaLabels: raw.MuhurtaLabels,
		Weekdays:      raw.Weekdays,
		Categories:    raw.Categories,
		Prompt:        raw.Prompt,
		Locations:     raw.Locations,
		unknown:       raw.UnknownWeekday,
		defaultCat:    raw.DefaultCategory,
		days:          map[string]int{},
		cats:          map[string]int{},
		places:        map[string]int{},
	}

	for i, d := range a.Weekdays {
		for _, k := range append([]string{d.Tamil, d.English}, d.Aliases...) {
			a.days[normalize.Key(k)] = i
		}
	}
	for i, c := range a.Categories {
		if _, dup := a.cats[c.Key]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Key)
		}
		a.cats[c.Key] = i
	}
	if _, ok := a.cats[a.defaultCat]; !ok {
		return nil, fmt.Errorf("default category %q not defined", a.defaultCat)
	}
	for i, l := range a.Locations {
		a.places[normalize.Key(l.Name)] = i
	}
	return a, nil
}

// Weekday translates a Tamil (or English) weekday name
// Unknown names come back with English "Unknown" and a generic description
func (a *Almanac) Weekday(name string) Weekday {
	if i, ok := a.days[normalize.Key(name)]; ok {
		return a.Weekdays[i]
	}
	return Weekday{Tamil: name, English: a.unknown.English, Description: a.unknown.Description}
}

// Category returns the category for key, or the default category
// The bool reports whether key itself was known
func (a *Almanac) Category(key string) (Category, bool) {
	if i, ok := a.cats[key]; ok {
		return a.Categories[i], true
	}
	return a.Categories[a.cats[a.defaultCat]], false
}

// Location finds a location by name, case and spacing insensitive
func (a *Almanac) Location(name string) (Location, bool) {
	i, ok := a.places[normalize.Key(name)]
	if !ok {
		return Location{}, false
	}
	return a.Locations[i], true
}

// SamplePayload renders the fallback day as a decoded JSON tree, shaped like
// the provider's panchang data, stamped with date and coordinates
// Each call returns a fresh tree
func (a *Almanac) SamplePayload(date string, lat, lon float64) map[string]any {
	s := a.Sample
	muhurta := make(map[string]any, len(s.Muhurta))
	for _, m := range s.Muhurta {
		muhurta[m.Key] = map[string]any{"start": m.Start, "end": m.End}
	}
	return map[string]any{
		"datetime":    date + "T00:00:00" + SampleOffset,
		"coordinates": map[string]any{"latitude": lat, "longitude": lon},
		"vaara":       s.Vaara,
		"sunrise":     s.Sunrise,
		"sunset":      s.Sunset,
		"nakshatra":   periods(s.Nakshatra),
		"tithi":       periods(s.Tithi),
		"karana":      periods(s.Karana),
		"yoga":        periods(s.Yoga),
		"muhurta":     muhurta,
	}
}

func periods(ps []Period) []any {
	out := make([]any, 0, len(ps))
	for _, p := range ps {
		out = append(out, map[string]any{"name": p.Name, "start": p.Start, "end": p.End})
	}
	return out
}
