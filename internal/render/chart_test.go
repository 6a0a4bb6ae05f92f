package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"textkit/internal/domain"
)

func TestBarChart_Empty(t *testing.T) {
	assert.Equal(t, "", BarChart(nil, ChartOptions{Height: 10}))
}

func TestBarChart_OneRowPerCount(t *testing.T) {
	words := []domain.WordCount{{Word: "the", Count: 3}, {Word: "cat", Count: 2}, {Word: "hat", Count: 1}}

	got := BarChart(words, ChartOptions{Title: "Top 5 words", Height: 10})

	// column width 3, bar heights 3, 2 and 1
	assert.Equal(t, 18, strings.Count(got, barGlyph))
	for _, s := range []string{"Top 5 words", "Frequency", "Word", "the", "cat", "hat", "└"} {
		assert.Contains(t, got, s)
	}
	assert.Equal(t, 3, strings.Count(got, "│"))
}

func TestBarChart_ScalesToHeight(t *testing.T) {
	words := []domain.WordCount{{Word: "a", Count: 20}, {Word: "b", Count: 10}}

	got := BarChart(words, ChartOptions{Height: 4})

	assert.Equal(t, (4+2)*minColWidth, strings.Count(got, barGlyph))
	assert.Equal(t, 4, strings.Count(got, "│"))
	assert.Contains(t, got, "20 │")
}

func TestBarChart_SmallCountsStayVisible(t *testing.T) {
	words := []domain.WordCount{{Word: "a", Count: 100}, {Word: "b", Count: 1}}

	got := BarChart(words, ChartOptions{Height: 5})

	assert.Equal(t, (5+1)*minColWidth, strings.Count(got, barGlyph))
}

func TestBarChart_WideWordsWidenColumns(t *testing.T) {
	words := []domain.WordCount{{Word: "extraordinary", Count: 1}}

	got := BarChart(words, ChartOptions{Height: 3})

	assert.Equal(t, len("extraordinary"), strings.Count(got, barGlyph))
}
