package cmd

import (
	"unicode/utf8"
)

// SanitizeASCII renders remote output as plain ASCII: every non-ASCII rune
// and every invalid UTF-8 byte becomes '?'. Remote hosts emit arbitrary
// bytes; the console contract is ASCII-only.
func SanitizeASCII(b []byte) string {
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && size == 1:
			out = append(out, '?')
		case r > 127:
			out = append(out, '?')
		default:
			out = append(out, byte(r))
		}
		b = b[size:]
	}
	return string(out)
}
