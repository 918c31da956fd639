package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim() func(any) any {
	return Lift(strings.TrimSpace)
}

// ToLower lowercases the whole string.
func ToLower() func(any) any {
	return Lift(strings.ToLower)
}

// ToUpper uppercases the whole string.
func ToUpper() func(any) any {
	return Lift(strings.ToUpper)
}

// Collapse trims the string and squeezes every internal whitespace run down
// to a single space.
func Collapse() func(any) any {
	return Lift(func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		space := false
		for _, r := range strings.TrimSpace(s) {
			if unicode.IsSpace(r) {
				space = true
				continue
			}
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.WriteRune(r)
		}
		return b.String()
	})
}

// Truncate cuts the string to at most n runes. Non-positive n yields the
// empty string.
func Truncate(n int) func(any) any {
	return Lift(func(s string) string {
		if n <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	})
}

// StripControl removes control characters, keeping tabs and newlines out of
// single-line form inputs.
func StripControl() func(any) any {
	return Lift(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, s)
	})
}
