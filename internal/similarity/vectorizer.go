package similarity

import (
	"errors"
	"sort"

	"textkit/internal/domain"
	"textkit/internal/textproc"
)

var _ domain.Vectorizer = (*CountVectorizer)(nil)

// CountVectorizer maps texts to raw word-count vectors over a shared vocabulary.
// It builds the vocabulary from the corpus passed to Prepare.
type CountVectorizer struct {
	vocabulary map[string]int
	dimension  int
	prepared   bool
}

// NewCountVectorizer creates an unprepared count vectorizer.
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{vocabulary: make(map[string]int)}
}

// Prepare builds the vocabulary as the union of the normalized words of corpus.
// An empty vocabulary is valid and yields zero-dimension vectors.
func (v *CountVectorizer) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for vectorizer prepare")
	}
	seen := make(map[string]struct{})
	for _, text := range corpus {
		for _, tok := range textproc.Normalize(text) {
			seen[tok] = struct{}{}
		}
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	v.vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
	}
	v.dimension = len(terms)
	v.prepared = true
	return nil
}

// Dimension returns the size of the vocabulary.
func (v *CountVectorizer) Dimension() int { return v.dimension }

// Embed counts the vocabulary words of text. Words outside the vocabulary are ignored.
func (v *CountVectorizer) Embed(text string) ([]float64, error) {
	if !v.prepared {
		return nil, errors.New("count vectorizer not prepared")
	}
	vec := make([]float64, v.dimension)
	for _, tok := range textproc.Normalize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	return vec, nil
}
