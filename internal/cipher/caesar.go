// Package cipher implements a Caesar shift substitution.
//
// The cipher only obfuscates text. It offers no secrecy and must not be used
// to protect data.
package cipher

import "strings"

// DefaultShift is the shift applied when saving encrypted text.
const DefaultShift = 3

const alphabetSize = 26

// Encode rotates every ASCII letter of text by shift positions within its
// case's alphabet. Any integer shift is accepted; all other characters pass
// through unchanged.
func Encode(text string, shift int) string {
	k := rune(((shift % alphabetSize) + alphabetSize) % alphabetSize)
	if k == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+k)%alphabetSize)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+k)%alphabetSize)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Decode reverses Encode for the same shift.
func Decode(text string, shift int) string {
	return Encode(text, -shift)
}
