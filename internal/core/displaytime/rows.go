package displaytime

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"panchang/internal/core/almanac"
	ptime "panchang/internal/platform/time"
)

// TimeNotAvailable is shown for a period without a complete window
const TimeNotAvailable = "நேரம் கிடைக்கவில்லை (Time not available)"

// Row is one flat line of the panchangam table
type Row struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

var tamilMonths = [12]string{
	"ஜனவரி", "பிப்ரவரி", "மார்ச்", "ஏப்ரல்", "மே", "ஜூன்",
	"ஜூலை", "ஆகஸ்ட்", "செப்டம்பர்", "அக்டோபர்", "நவம்பர்", "டிசம்பர்",
}

var periodRows = []struct{ key, category string }{
	{"nakshatra", "Nakshatra"},
	{"tithi", "Tithi"},
	{"karana", "Karana"},
	{"yoga", "Yoga"},
}

// TamilDate renders a YYYY-MM-DD date as "1 ஜனவரி, 2024"; unparseable input is returned as is
func TamilDate(date string) string {
	t, err := time.Parse(ptime.DateLayout, date)
	if err != nil {
		return date
	}
	return strconv.Itoa(t.Day()) + " " + tamilMonths[t.Month()-1] + ", " + strconv.Itoa(t.Year())
}

// Rows flattens a panchang payload into labelled display rows
// Muhurta windows follow the order of labels, then any unlabelled keys sorted
func Rows(payload map[string]any, labels []almanac.Label) []Row {
	if payload == nil {
		return nil
	}
	var rows []Row

	if d := payloadDate(payload); d != "" {
		rows = append(rows, Row{"Basic", "தேதி (Date)", TamilDate(d)})
	}
	if c, ok := payload["coordinates"].(map[string]any); ok {
		rows = append(rows, Row{"Basic", "ஆயக்கோடுகள் (Coordinates)", number(c["latitude"]) + ", " + number(c["longitude"])})
	}
	if v, ok := payload["vaara"].(string); ok && v != "" {
		rows = append(rows, Row{"Day", "கிழமை (Weekday)", v})
	}
	if s, ok := payload["sunrise"].(string); ok && s != "" {
		rows = append(rows, Row{"Time", "சூரிய உதயம் (Sunrise)", Normalize(s)})
	}
	if s, ok := payload["sunset"].(string); ok && s != "" {
		rows = append(rows, Row{"Time", "சூரிய அஸ்தமனம் (Sunset)", Normalize(s)})
	}

	for _, p := range periodRows {
		items, _ := payload[p.key].([]any)
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			rows = append(rows, Row{p.category, name, windowValue(m)})
		}
	}

	if mu, ok := payload["muhurta"].(map[string]any); ok {
		for _, k := range muhurtaOrder(mu, labels) {
			w, ok := mu[k].(map[string]any)
			if !ok {
				continue
			}
			s, _ := w["start"].(string)
			e, _ := w["end"].(string)
			if s == "" || e == "" {
				continue
			}
			rows = append(rows, Row{"Muhurta", labelFor(k, labels), Range(s, e)})
		}
	}
	return rows
}

func windowValue(m map[string]any) string {
	s, _ := m["start"].(string)
	e, _ := m["end"].(string)
	if s == "" || e == "" {
		return TimeNotAvailable
	}
	return Range(s, e)
}

func payloadDate(p map[string]any) string {
	if d, ok := p["date"].(string); ok && d != "" {
		return d
	}
	if dt, ok := p["datetime"].(string); ok {
		d, _, _ := strings.Cut(dt, "T")
		return d
	}
	return ""
}

func number(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return n
	default:
		return ""
	}
}

func muhurtaOrder(mu map[string]any, labels []almanac.Label) []string {
	keys := make([]string, 0, len(mu))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if _, ok := mu[l.Key]; ok && !seen[l.Key] {
			keys = append(keys, l.Key)
			seen[l.Key] = true
		}
	}
	var rest []string
	for k := range mu {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

func labelFor(key string, labels []almanac.Label) string {
	for _, l := range labels {
		if l.Key == key {
			return l.Label
		}
	}
	return key
}
