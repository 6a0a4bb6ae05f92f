package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textkit/internal/domain"
)

func TestNewTextService_Defaults(t *testing.T) {
	s := NewTextService(Options{Shift: 3})

	assert.Equal(t, 5, s.topWords)
	assert.Equal(t, 5, s.histogramWords)
	assert.Equal(t, ".txt", s.extension)
}

func TestEncryptDecrypt(t *testing.T) {
	s := NewTextService(DefaultOptions())

	assert.Equal(t, "Khoor, Zruog!", s.Encrypt("Hello, World!"))
	assert.Equal(t, "Hello, World!", s.Decrypt("Khoor, Zruog!"))
}

func TestEncrypt_CustomShift(t *testing.T) {
	s := NewTextService(Options{Shift: 1})

	assert.Equal(t, "bcd", s.Encrypt("abc"))
}

func TestAnalyze(t *testing.T) {
	s := NewTextService(Options{Shift: 3, TopWords: 2})

	a := s.Analyze("Hello world! Hello there?")

	assert.Equal(t, 4, a.Words)
	assert.Equal(t, 2, a.Sentences)
	assert.Equal(t, 2.0, a.AverageSentenceLength)
	assert.Equal(t, []domain.WordCount{{Word: "hello", Count: 2}, {Word: "world", Count: 1}}, a.TopWords)
}

func TestHistogram(t *testing.T) {
	s := NewTextService(DefaultOptions())

	top, err := s.Histogram("b a b c")

	require.NoError(t, err)
	assert.Equal(t, []domain.WordCount{{Word: "b", Count: 2}, {Word: "a", Count: 1}, {Word: "c", Count: 1}}, top)
}

func TestHistogram_NotEnoughText(t *testing.T) {
	s := NewTextService(DefaultOptions())

	for _, text := range []string{"", "   \n", "?!."} {
		_, err := s.Histogram(text)
		assert.True(t, errors.Is(err, domain.ErrNotEnoughText), text)
	}
}

func TestCompare(t *testing.T) {
	s := NewTextService(DefaultOptions())

	c := s.Compare("the same text", "The same text.")

	assert.Equal(t, 1.0, c.Cosine)
	assert.Equal(t, 1.0, c.Jaccard)
}

func TestFindPatterns(t *testing.T) {
	s := NewTextService(DefaultOptions())

	p := s.FindPatterns("contact me at a.b@example.com today, 5/6/2024")

	assert.Equal(t, []string{"a.b@example.com"}, p.Emails)
	assert.Equal(t, []string{"5/6/2024"}, p.Dates)
}

func TestLoadAndSaveEncrypted(t *testing.T) {
	s := NewTextService(DefaultOptions())
	dir := t.TempDir()

	written, err := s.SaveEncrypted(filepath.Join(dir, "secret"), "abc XYZ")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "secret.txt"), written)

	raw, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "def ABC", string(raw))

	doc, err := s.LoadDocument(written)
	require.NoError(t, err)
	assert.Equal(t, "abc XYZ", s.Decrypt(doc.Content))
}

func TestLoadDocument_Missing(t *testing.T) {
	s := NewTextService(DefaultOptions())

	_, err := s.LoadDocument(filepath.Join(t.TempDir(), "nope.txt"))

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveEncrypted_Failure(t *testing.T) {
	s := NewTextService(DefaultOptions())

	_, err := s.SaveEncrypted(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save encrypted")
}
