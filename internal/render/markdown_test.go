package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textkit/internal/domain"
)

func TestAnalysisMarkdown(t *testing.T) {
	md := AnalysisMarkdown(domain.Analysis{
		Words:                 4,
		Sentences:             2,
		AverageSentenceLength: 2,
		TopWords:              []domain.WordCount{{Word: "hello", Count: 2}},
	})

	assert.Contains(t, md, "# Text analysis")
	assert.Contains(t, md, "| Word count | 4 |")
	assert.Contains(t, md, "| Average sentence length | 2.00 |")
	assert.Contains(t, md, "| hello | 2 |")
}

func TestAnalysisMarkdown_NoWords(t *testing.T) {
	md := AnalysisMarkdown(domain.Analysis{})

	assert.Contains(t, md, "_none found_")
}

func TestPatternsMarkdown(t *testing.T) {
	md := PatternsMarkdown(domain.Patterns{Emails: []string{"a@b.io"}})

	assert.Contains(t, md, "## Email addresses\n\n- `a@b.io`")
	assert.Contains(t, md, "## Dates\n\n_none found_")
}

func TestComparisonMarkdown(t *testing.T) {
	md := ComparisonMarkdown(domain.Comparison{Cosine: 0.5, Jaccard: 0.25})

	assert.Contains(t, md, "| Cosine similarity | 0.500 |")
	assert.Contains(t, md, "| Jaccard index | 0.250 |")
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown(ComparisonMarkdown(domain.Comparison{Cosine: 1, Jaccard: 1}), 80, "notty")

	require.NoError(t, err)
	assert.Contains(t, out, "Cosine similarity")
	assert.Contains(t, out, "1.000")
}
