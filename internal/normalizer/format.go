package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanAddress turns the upstream "!"-separated address into a single line.
func CleanAddress(address string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(address, "!", ", ")), " ")
}

// FormatKey turns a compact key into a label: camelCase and snake_case words
// are split and each word is capitalized ("registeredState" -> "Registered State").
func FormatKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		switch {
		case r == '_':
			b.WriteByte(' ')
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
