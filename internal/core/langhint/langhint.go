// Package langhint guesses the script a nakshatra or weekday name was typed in
package langhint

import (
	"unicode"
)

// Script names returned by Script
const (
	Tamil      = "Tamil"
	Latin      = "Latin"
	Devanagari = "Devanagari"
	Mixed      = "Mixed"
	Other      = "Other"
)

// Script returns the predominant script of s. Tamil vowel signs are marks,
// not letters, so they are counted with the block rather than by category.
// Returns "" when s carries no letters at all
func Script(s string) string {
	var tamil, latin, deva, other int
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.Tamil):
			tamil++
		case unicode.In(r, unicode.Devanagari):
			deva++
		case !unicode.IsLetter(r):
			continue
		case unicode.In(r, unicode.Latin):
			latin++
		default:
			other++
		}
	}

	type sc struct {
		name string
		cnt  int
	}
	var best sc
	seen := 0
	for _, c := range []sc{{Tamil, tamil}, {Devanagari, deva}, {Latin, latin}, {Other, other}} {
		if c.cnt == 0 {
			continue
		}
		seen++
		if c.cnt > best.cnt {
			best = c
		}
	}
	switch seen {
	case 0:
		return ""
	case 1:
		return best.name
	default:
		return Mixed
	}
}
