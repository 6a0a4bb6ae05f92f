package service

import (
	"fmt"

	"textkit/internal/cipher"
	"textkit/internal/document"
	"textkit/internal/domain"
	"textkit/internal/logger"
	"textkit/internal/metrics"
	"textkit/internal/patterns"
	"textkit/internal/similarity"
)

// Options configures a TextServiceImpl. Zero values select the defaults.
type Options struct {
	Shift            int
	TopWords         int
	HistogramWords   int
	DefaultExtension string
}

// DefaultOptions mirrors the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Shift:            cipher.DefaultShift,
		TopWords:         metrics.DefaultTopN,
		HistogramWords:   metrics.DefaultTopN,
		DefaultExtension: document.DefaultExtension,
	}
}

type TextServiceImpl struct {
	shift          int
	topWords       int
	histogramWords int
	extension      string
	extractor      *patterns.Extractor
}

var _ domain.TextService = (*TextServiceImpl)(nil)

func NewTextService(opts Options) *TextServiceImpl {
	if opts.TopWords <= 0 {
		opts.TopWords = metrics.DefaultTopN
	}
	if opts.HistogramWords <= 0 {
		opts.HistogramWords = metrics.DefaultTopN
	}
	if opts.DefaultExtension == "" {
		opts.DefaultExtension = document.DefaultExtension
	}
	return &TextServiceImpl{
		shift:          opts.Shift,
		topWords:       opts.TopWords,
		histogramWords: opts.HistogramWords,
		extension:      opts.DefaultExtension,
		extractor:      patterns.NewExtractor(),
	}
}

func (s *TextServiceImpl) LoadDocument(path string) (domain.Document, error) {
	doc, err := document.Read(path)
	if err != nil {
		return domain.Document{}, err
	}
	logger.Debug("loaded %s (%d bytes)", path, len(doc.Content))
	return doc, nil
}

// SaveEncrypted encodes text with the configured shift and writes it to path.
// It returns the path actually written.
func (s *TextServiceImpl) SaveEncrypted(path, text string) (string, error) {
	written, err := document.Write(path, s.Encrypt(text), s.extension)
	if err != nil {
		return "", fmt.Errorf("save encrypted: %w", err)
	}
	logger.Debug("saved encrypted text to %s", written)
	return written, nil
}

func (s *TextServiceImpl) Encrypt(text string) string { return cipher.Encode(text, s.shift) }

func (s *TextServiceImpl) Decrypt(text string) string { return cipher.Decode(text, s.shift) }

func (s *TextServiceImpl) Analyze(text string) domain.Analysis {
	a := metrics.Analyze(text, s.topWords)
	logger.Debug("analyzed %d words in %d sentences", a.Words, a.Sentences)
	return a
}

// Histogram returns the words to chart, or domain.ErrNotEnoughText when text has none.
func (s *TextServiceImpl) Histogram(text string) ([]domain.WordCount, error) {
	top := metrics.TopWords(text, s.histogramWords)
	if len(top) == 0 {
		return nil, fmt.Errorf("histogram: %w", domain.ErrNotEnoughText)
	}
	return top, nil
}

func (s *TextServiceImpl) Compare(a, b string) domain.Comparison {
	c := similarity.Compare(a, b)
	logger.Debug("cosine=%.6f jaccard=%.6f", c.Cosine, c.Jaccard)
	return c
}

func (s *TextServiceImpl) FindPatterns(text string) domain.Patterns {
	return s.extractor.Find(text)
}
