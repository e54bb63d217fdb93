package domain

import (
	"strings"
	"unicode"
)

// CleanLocation prepares a location for storage and comparison: it trims the
// value and collapses every whitespace run (tabs, newlines included) into one
// space. Case is preserved, it is what the inspector typed.
func CleanLocation(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
