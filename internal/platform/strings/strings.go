// Package strings provides small string and slice helpers
package strings

import (
	std "strings"
	"unicode/utf8"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// FirstNonEmpty returns the first argument with non whitespace content, or ""
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if std.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /panchang or /meta
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Truncate cuts s to at most n runes, appending an ellipsis when it cut anything.
// Used to keep upstream bodies in logs readable
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
