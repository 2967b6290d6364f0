package payload

import (
	"strings"
	"unicode"
)

// Slugify converts a display name into a lowercase, URL-safe token.
// The same input always yields the same slug; uniqueness across a
// collection is enforced by the storage layer's unique index, not here.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
