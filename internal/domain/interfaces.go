package domain

// Document represents a text loaded into the system, either from a file or
// typed into the buffer. Path is empty for typed text.
type Document struct {
	Path    string
	Content string
}

// WordCount pairs a normalized word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Analysis holds the lexical metrics computed for a single text.
type Analysis struct {
	Words                 int
	Sentences             int
	AverageSentenceLength float64
	TopWords              []WordCount
}

// Comparison holds the similarity scores between two texts.
type Comparison struct {
	Cosine  float64
	Jaccard float64
}

// Patterns holds the substrings extracted from a text, in order of appearance.
type Patterns struct {
	Emails []string
	Dates  []string
}

// Vectorizer converts free text into a numeric vector representation.
// Implementations require a preparation phase over the corpus.
type Vectorizer interface {
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// TextService defines the operations exposed by the application core.
type TextService interface {
	LoadDocument(path string) (Document, error)
	SaveEncrypted(path, text string) (string, error)
	Encrypt(text string) string
	Decrypt(text string) string
	Analyze(text string) Analysis
	Histogram(text string) ([]WordCount, error)
	Compare(a, b string) Comparison
	FindPatterns(text string) Patterns
}
