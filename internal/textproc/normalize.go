// Package textproc turns raw text into normalized word tokens.
package textproc

import (
	"strings"
)

// Punctuation is the ASCII punctuation set removed during normalization.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases text, deletes ASCII punctuation and splits the result
// on whitespace. Punctuation is deleted rather than replaced, so "don't"
// becomes "dont".
func Normalize(text string) []string {
	lower := strings.ToLower(text)
	stripped := strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, lower)
	return strings.Fields(stripped)
}

// NormalizeString returns the normalized tokens of text joined by single spaces.
func NormalizeString(text string) string {
	return strings.Join(Normalize(text), " ")
}

// WordBag maps normalized words to their occurrence counts and remembers
// the order in which each word was first seen.
type WordBag struct {
	counts map[string]int
	order  []string
	total  int
}

// NewWordBag counts the normalized words of text.
func NewWordBag(text string) *WordBag {
	return NewWordBagFromTokens(Normalize(text))
}

// NewWordBagFromTokens counts already normalized tokens.
func NewWordBagFromTokens(tokens []string) *WordBag {
	b := &WordBag{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if _, ok := b.counts[tok]; !ok {
			b.order = append(b.order, tok)
		}
		b.counts[tok]++
		b.total++
	}
	return b
}

// Count returns the number of occurrences of word.
func (b *WordBag) Count(word string) int { return b.counts[word] }

// Len returns the number of distinct words.
func (b *WordBag) Len() int { return len(b.order) }

// Total returns the sum of all counts.
func (b *WordBag) Total() int { return b.total }

// Words returns the distinct words in first-seen order.
func (b *WordBag) Words() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Set returns the distinct words as a set.
func (b *WordBag) Set() map[string]struct{} {
	m := make(map[string]struct{}, len(b.order))
	for _, w := range b.order {
		m[w] = struct{}{}
	}
	return m
}
