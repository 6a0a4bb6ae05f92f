// Package metrics computes lexical statistics over raw text.
package metrics

import (
	"strings"

	"textkit/internal/domain"
	"textkit/internal/textproc"
)

// sentenceTerminators are counted one by one, so "..." is three sentences.
const sentenceTerminators = ".!?"

// WordCount returns the number of normalized words in text.
func WordCount(text string) int {
	return len(textproc.Normalize(text))
}

// SentenceCount returns the number of '.', '!' and '?' characters in the raw text.
func SentenceCount(text string) int {
	n := 0
	for _, r := range sentenceTerminators {
		n += strings.Count(text, string(r))
	}
	return n
}

// AverageSentenceLength returns words per sentence, or 0 when text has no
// sentence terminators.
func AverageSentenceLength(text string) float64 {
	sentences := SentenceCount(text)
	if sentences == 0 {
		return 0
	}
	return float64(WordCount(text)) / float64(sentences)
}

// Analyze computes all metrics for text, ranking the top n words.
func Analyze(text string, n int) domain.Analysis {
	tokens := textproc.Normalize(text)
	sentences := SentenceCount(text)
	avg := 0.0
	if sentences > 0 {
		avg = float64(len(tokens)) / float64(sentences)
	}
	if n <= 0 {
		n = DefaultTopN
	}
	return domain.Analysis{
		Words:                 len(tokens),
		Sentences:             sentences,
		AverageSentenceLength: avg,
		TopWords:              Rank(textproc.NewWordBagFromTokens(tokens), n),
	}
}
