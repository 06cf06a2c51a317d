package recipe

import "strings"

// SanitizeName maps every rune outside [A-Za-z0-9_-] to '-', one for one.
// Runs are not collapsed, so the result keeps the input's length and the
// function is idempotent. Names from distinct files may collide after
// sanitization; the writer lets the last one win.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
