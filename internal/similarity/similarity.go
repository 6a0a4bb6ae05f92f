// Package similarity compares two texts by their normalized words.
package similarity

import (
	"math"

	"textkit/internal/domain"
	"textkit/internal/textproc"
)

// Cosine returns the cosine of the angle between the word-count vectors of a
// and b over their combined vocabulary. It returns 0 when either text has no words.
func Cosine(a, b string) float64 {
	v := NewCountVectorizer()
	if err := v.Prepare([]string{a, b}); err != nil {
		return 0
	}
	va, _ := v.Embed(a)
	vb, _ := v.Embed(b)
	return CosineVectors(va, vb)
}

// CosineVectors returns dot(a, b) / (|a| * |b|), or 0 when either magnitude is 0.
func CosineVectors(a, b []float64) float64 {
	sa := dot(a, a)
	sb := dot(b, b)
	if sa == 0 || sb == 0 {
		return 0
	}
	// one sqrt keeps identical count vectors at exactly 1
	return dot(a, b) / math.Sqrt(sa*sb)
}

// Jaccard returns |A ∩ B| / |A ∪ B| over the word sets of a and b.
// When both texts have no words the union is empty and 0 is returned.
func Jaccard(a, b string) float64 {
	return JaccardSets(textproc.NewWordBag(a).Set(), textproc.NewWordBag(b).Set())
}

// JaccardSets computes the Jaccard index of two word sets.
func JaccardSets(a, b map[string]struct{}) float64 {
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Compare computes both scores for a and b.
func Compare(a, b string) domain.Comparison {
	return domain.Comparison{Cosine: Cosine(a, b), Jaccard: Jaccard(a, b)}
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
