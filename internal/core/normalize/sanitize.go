package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes runes that never belong in a provider label:
// NUL and other ASCII controls, DEL and the C1 block, plus invalid UTF-8 bytes.
// Tabs and line breaks become plain spaces.
// strings.Map hands back s itself when nothing changed
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case r < 0x20, r == 0x7F, r >= 0x80 && r <= 0x9F:
			return -1
		}
		return r
	}, s)
}
