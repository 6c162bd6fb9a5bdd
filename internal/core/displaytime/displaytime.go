// Package displaytime turns provider time strings into HH:MM display values
//
// Recognized encodings, tried in order
//
//	2024-01-01T18:30:00+05:30   date-time, offset stripped
//	06:15:00 +0530              time then a space separated offset
//	06:15                       already a display time
//
// Anything else is returned unchanged. Normalize never fails
package displaytime

import (
	"strings"
)

// Normalize returns the HH:MM display form of s, or s when the encoding is not recognized
func Normalize(s string) string {
	switch {
	case strings.Contains(s, "T"):
		_, after, _ := strings.Cut(s, "T")
		if i := strings.IndexAny(after, "+-"); i >= 0 {
			after = after[:i]
		}
		return hhmm(after, s)
	case strings.Contains(s, " "):
		before, _, _ := strings.Cut(s, " ")
		return hhmm(before, s)
	case IsDisplay(s): // already HH:MM
		return s
	default:
		return s
	}
}

// Range is the composed "{start} - {end}" label
func Range(start, end string) string {
	return Normalize(start) + " - " + Normalize(end)
}

// hhmm keeps the first two colon separated fields of clock, falling back to orig
// when clock does not look like a time of day
func hhmm(clock, orig string) string {
	h, rest, ok := strings.Cut(clock, ":")
	if !ok || !numeric(h) {
		return orig
	}
	m, _, _ := strings.Cut(rest, ":")
	if !numeric(m) {
		return orig
	}
	return h + ":" + m
}

// IsDisplay reports whether s is exactly two colon delimited numeric fields
func IsDisplay(s string) bool {
	h, m, ok := strings.Cut(s, ":")
	return ok && numeric(h) && numeric(m)
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Window is a raw provider start/end pair
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DisplayWindow is a Window with its normalized display fields
type DisplayWindow struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
	RangeLabel   string `json:"range_label"`
}

// Display normalizes both ends of w
func (w Window) Display() DisplayWindow {
	sd, ed := Normalize(w.Start), Normalize(w.End)
	return DisplayWindow{
		Start:        w.Start,
		End:          w.End,
		StartDisplay: sd,
		EndDisplay:   ed,
		RangeLabel:   sd + " - " + ed,
	}
}
