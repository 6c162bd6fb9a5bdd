package nakshatra

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"panchang/internal/core/normalize"
)

// Strategy tags the step of the cascade that resolved a name
type Strategy uint8

const (
	Unresolved Strategy = iota
	ExactVariant
	TableVariant
	FuzzyMatch
)

func (s Strategy) String() string {
	switch s {
	case ExactVariant:
		return "exact_variant"
	case TableVariant:
		return "table_variant"
	case FuzzyMatch:
		return "fuzzy_match"
	default:
		return "unresolved"
	}
}

// MarshalText renders the strategy by name in JSON
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Resolution is the outcome of resolving one free text name
type Resolution struct {
	Input     string   `json:"input"`
	Index     int      `json:"index"`
	Canonical string   `json:"canonical"`
	English   string   `json:"english"`
	Strategy  Strategy `json:"strategy"`
}

// Resolved reports whether a cycle index was found
func (r Resolution) Resolved() bool { return r.Index >= 0 }

// Resolver maps names onto a catalog of canonical entries
// It is immutable after construction and safe for concurrent use
type Resolver struct {
	names    []Nakshatra
	keys     []string          // normalize.Key of each canonical name
	exact    map[string]int    // canonical key -> index
	variants map[string]string // alternate key -> canonical name
	direct   []Direct          // spellings in normalize.Name form
}

type step struct {
	tag Strategy
	try func(r *Resolver, name, key string) int
}

// cascade is tried in order until a step yields an index
var cascade = []step{
	{ExactVariant, (*Resolver).matchDirect},
	{TableVariant, (*Resolver).matchTable},
	{FuzzyMatch, (*Resolver).matchFuzzy},
}

var std = mustResolver(cycle[:], variantSource, directSource)

// Default returns the resolver over the canonical cycle
func Default() *Resolver { return std }

// Resolve resolves name against the canonical cycle
func Resolve(name string) Resolution { return std.Resolve(name) }

// Translate maps an alternate spelling to its canonical name, or returns name unchanged
func Translate(name string) string { return std.Translate(name) }

func mustResolver(names []Nakshatra, variants map[string]string, direct []Direct) *Resolver {
	r, err := NewResolver(names, variants, direct)
	if err != nil {
		panic(fmt.Errorf("nakshatra: %w", err))
	}
	return r
}

// NewResolver builds a resolver over names. Entry i of names must carry Index i;
// every variant must point at one of names and every direct index must be in range
func NewResolver(names []Nakshatra, variants map[string]string, direct []Direct) (*Resolver, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty catalog")
	}
	r := &Resolver{
		names:    append([]Nakshatra(nil), names...),
		keys:     make([]string, len(names)),
		exact:    make(map[string]int, len(names)),
		variants: make(map[string]string, len(variants)),
		direct:   make([]Direct, 0, len(direct)),
	}
	for i, n := range names {
		if n.Index != i {
			return nil, fmt.Errorf("entry %q has index %d at position %d", n.Tamil, n.Index, i)
		}
		k := normalize.Key(n.Tamil)
		if k == "" {
			return nil, fmt.Errorf("entry %d has an empty name", i)
		}
		if _, dup := r.exact[k]; dup {
			return nil, fmt.Errorf("duplicate canonical name %q", n.Tamil)
		}
		r.keys[i] = k
		r.exact[k] = i
	}
	for alt, canon := range variants {
		if _, ok := r.exact[normalize.Key(canon)]; !ok {
			return nil, fmt.Errorf("variant %q points at unknown name %q", alt, canon)
		}
		k := normalize.Key(alt)
		if prev, ok := r.variants[k]; ok && prev != canon {
			return nil, fmt.Errorf("variant %q maps to both %q and %q", alt, prev, canon)
		}
		r.variants[k] = canon
	}
	for _, d := range direct {
		s := normalize.Name(d.Spelling)
		if s == "" {
			return nil, fmt.Errorf("empty direct spelling")
		}
		if d.Index < 0 || d.Index >= len(names) {
			return nil, fmt.Errorf("direct spelling %q index %d out of range", d.Spelling, d.Index)
		}
		r.direct = append(r.direct, Direct{Spelling: s, Index: d.Index})
	}
	return r, nil
}

// Size is the number of catalog entries
func (r *Resolver) Size() int { return len(r.names) }

// Translate maps an alternate spelling to its canonical name, or returns name unchanged
func (r *Resolver) Translate(name string) string {
	if c, ok := r.variants[normalize.Key(name)]; ok {
		return c
	}
	return name
}

// Resolve runs the cascade for name. It never fails: names no step can place
// come back Unresolved with Index -1 and Canonical Unknown
func (r *Resolver) Resolve(name string) Resolution {
	n := normalize.Name(name)
	k := normalize.Key(name)
	for _, s := range cascade {
		if i := s.try(r, n, k); i >= 0 {
			e := r.names[i]
			return Resolution{Input: name, Index: i, Canonical: e.Tamil, English: e.English, Strategy: s.tag}
		}
	}
	return Resolution{Input: name, Index: -1, Canonical: Unknown, English: Unknown, Strategy: Unresolved}
}

// matchDirect checks the hand mapped spellings, equality first then containment
func (r *Resolver) matchDirect(name, _ string) int {
	for _, d := range r.direct {
		if name == d.Spelling {
			return d.Index
		}
	}
	for _, d := range r.direct {
		if strings.Contains(name, d.Spelling) {
			return d.Index
		}
	}
	return -1
}

// matchTable translates through the variant table and looks for an exact position
func (r *Resolver) matchTable(_, key string) int {
	if c, ok := r.variants[key]; ok {
		key = normalize.Key(c)
	}
	if i, ok := r.exact[key]; ok {
		return i
	}
	return -1
}

// matchFuzzy accepts the first entry, in catalog order, containing at least
// half of the input's runes (counted with repetition, in any order)
func (r *Resolver) matchFuzzy(_, key string) int {
	n := utf8.RuneCountInString(key)
	if n == 0 {
		return -1
	}
	for i, canon := range r.keys {
		if 2*overlap(key, canon) >= n {
			return i
		}
	}
	return -1
}

// overlap counts the runes of s that occur anywhere in in
func overlap(s, in string) int {
	c := 0
	for _, ch := range s {
		if strings.ContainsRune(in, ch) {
			c++
		}
	}
	return c
}
