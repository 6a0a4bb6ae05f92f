package metrics

import (
	"sort"

	"textkit/internal/domain"
	"textkit/internal/textproc"
)

// DefaultTopN is the number of words ranked when no positive n is given.
const DefaultTopN = 5

// TopWords ranks the normalized words of text by frequency and returns the
// first n. Words with equal counts keep the order of their first occurrence.
func TopWords(text string, n int) []domain.WordCount {
	if n <= 0 {
		n = DefaultTopN
	}
	return Rank(textproc.NewWordBag(text), n)
}

// Rank returns the n most frequent words of bag.
func Rank(bag *textproc.WordBag, n int) []domain.WordCount {
	words := bag.Words()
	ranked := make([]domain.WordCount, len(words))
	for i, w := range words {
		ranked[i] = domain.WordCount{Word: w, Count: bag.Count(w)}
	}
	// Stable keeps first-seen order among equal counts
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
