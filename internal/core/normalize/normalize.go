// Package normalize provides a deterministic normalizer for nakshatra names
// and other short provider labels before they are compared against reference tables
// Pipeline order
// 1 Sanitize drops control runes and invalid UTF-8
// 2 Unicode NFC composition
// 3 Case folding
// 4 Remove format characters (ZWJ, ZWNJ, BOM)
// 5 Width fold fullwidth to ASCII
// 6 Punctuation becomes a space
// 7 Collapse whitespace to single spaces and trim
//
// Combining marks are kept: Tamil vowel signs and the virama are marks and carry meaning
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			runes.Map(punctToSpace),
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

var std = New()

// Name normalizes s with the shared Normalizer
func Name(s string) string { return std.Normalize(s) }

// Key is the compact lookup form of s: Name with every space removed,
// so "Purva Ashadha", "purva-ashadha" and "PurvaAshadha" share one key
func Key(s string) string { return std.Key(s) }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// Key returns the normalized form with spaces removed
func (n *Normalizer) Key(s string) string {
	return strings.ReplaceAll(n.Normalize(s), " ", "")
}

func punctToSpace(r rune) rune {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return ' '
	}
	return r
}

// collapseSpaces converts whitespace runs (line breaks included) to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
