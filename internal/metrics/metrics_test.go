package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textkit/internal/domain"
	"textkit/internal/textproc"
)

const scenario = "Hello world! Hello there?"

func TestWordCount(t *testing.T) {
	inputs := []string{"", scenario, "don't -- stop", "one\ntwo three."}
	for _, in := range inputs {
		assert.Equal(t, len(textproc.Normalize(in)), WordCount(in), in)
	}
	assert.Equal(t, 4, WordCount(scenario))
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"no terminators here", 0},
		{scenario, 2},
		{"Wait...", 3},
		{"Really?! Yes.", 3},
		{"v1.2.3", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SentenceCount(tt.in), tt.in)
	}
}

func TestAverageSentenceLength(t *testing.T) {
	assert.Equal(t, 0.0, AverageSentenceLength(""))
	assert.Equal(t, 0.0, AverageSentenceLength("words without any terminator"))
	assert.Equal(t, 2.0, AverageSentenceLength(scenario))
	assert.InDelta(t, 5.0/3.0, AverageSentenceLength("one two three four five..."), 1e-9)
}

func TestTopWords_Scenario(t *testing.T) {
	got := TopWords(scenario, 2)

	assert.Equal(t, []domain.WordCount{{Word: "hello", Count: 2}, {Word: "world", Count: 1}}, got)
}

func TestTopWords_TiesKeepFirstOccurrence(t *testing.T) {
	got := TopWords("c b a b c a d", 4)

	assert.Equal(t, []domain.WordCount{
		{Word: "c", Count: 2},
		{Word: "b", Count: 2},
		{Word: "a", Count: 2},
		{Word: "d", Count: 1},
	}, got)
}

func TestTopWords_ShorterThanN(t *testing.T) {
	got := TopWords("alpha beta alpha", 5)

	assert.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Word)
}

func TestTopWords_Empty(t *testing.T) {
	assert.Empty(t, TopWords("", 5))
	assert.Empty(t, TopWords("!!! ...", 5))
}

func TestTopWords_DefaultN(t *testing.T) {
	got := TopWords("a b c d e f g", 0)

	assert.Len(t, got, DefaultTopN)
}

func TestAnalyze(t *testing.T) {
	a := Analyze(scenario, 5)

	assert.Equal(t, 4, a.Words)
	assert.Equal(t, 2, a.Sentences)
	assert.Equal(t, 2.0, a.AverageSentenceLength)
	assert.Equal(t, []domain.WordCount{
		{Word: "hello", Count: 2},
		{Word: "world", Count: 1},
		{Word: "there", Count: 1},
	}, a.TopWords)
}

func TestAnalyze_NoSentences(t *testing.T) {
	a := Analyze("just words", 5)

	assert.Equal(t, 2, a.Words)
	assert.Equal(t, 0, a.Sentences)
	assert.Equal(t, 0.0, a.AverageSentenceLength)
}
