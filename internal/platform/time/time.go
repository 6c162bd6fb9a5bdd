// Package time contains calendar helpers for provider requests
package time

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date form used on the wire
const DateLayout = "2006-01-02"

// ParseOffset turns "+05:30" / "-08:00" / "Z" into a fixed zone named after the offset
func ParseOffset(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Z" {
		return time.UTC, nil
	}
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return nil, fmt.Errorf("offset %q: want ±HH:MM", s)
	}
	h, err := strconv.Atoi(s[1:3])
	if err != nil || h > 14 {
		return nil, fmt.Errorf("offset %q: bad hours", s)
	}
	m, err := strconv.Atoi(s[4:6])
	if err != nil || m > 59 {
		return nil, fmt.Errorf("offset %q: bad minutes", s)
	}
	secs := h*3600 + m*60
	if s[0] == '-' {
		secs = -secs
	}
	return time.FixedZone(s, secs), nil
}

// StartOfDay parses a YYYY-MM-DD date as local midnight in loc
func StartOfDay(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
}

// ProviderStamp formats t the way panchang providers expect: 2006-01-02T15:04:05+05:30
func ProviderStamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05-07:00")
}
