package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textkit/internal/domain"
)

func TestAnalysis(t *testing.T) {
	a := domain.Analysis{
		Words:                 4,
		Sentences:             3,
		AverageSentenceLength: 4.0 / 3.0,
		TopWords:              []domain.WordCount{{Word: "hello", Count: 2}, {Word: "world", Count: 1}},
	}

	want := "Word count: 4\n" +
		"Sentence count: 3\n" +
		"Average sentence length: 1.33\n" +
		"Most frequent words:\n" +
		" - hello: 2\n" +
		" - world: 1\n"
	assert.Equal(t, want, Analysis(a))
}

func TestAnalysis_Empty(t *testing.T) {
	got := Analysis(domain.Analysis{})

	assert.Equal(t, "Word count: 0\nSentence count: 0\nAverage sentence length: 0.00\nMost frequent words:\n", got)
}

func TestPatterns(t *testing.T) {
	got := Patterns(domain.Patterns{Emails: []string{"a@b.io", "c@d.io"}, Dates: []string{"1/2/2020"}})

	want := "Patterns found:\n" +
		"Email addresses:\n" +
		" - a@b.io\n" +
		" - c@d.io\n" +
		"Dates:\n" +
		" - 1/2/2020\n"
	assert.Equal(t, want, got)
}

func TestPatterns_NoneFound(t *testing.T) {
	got := Patterns(domain.Patterns{})

	assert.Equal(t, "Patterns found:\nEmail addresses: none found\nDates: none found\n", got)
}

func TestComparison(t *testing.T) {
	got := Comparison(domain.Comparison{Cosine: 0.70710678, Jaccard: 1.0 / 3.0})

	assert.Equal(t, "Cosine similarity: 0.707\nJaccard index: 0.333", got)
}
