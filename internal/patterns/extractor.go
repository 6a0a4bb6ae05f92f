// Package patterns extracts email addresses and dates from text.
package patterns

import (
	"regexp"

	"textkit/internal/domain"
)

const (
	// The top-level domain only matches lowercase letters.
	emailExpr = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-z]{2,}`
	// Separators are matched independently and dates are not validated.
	dateExpr = `\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`
)

// Extractor finds email addresses and dates using regular expressions.
type Extractor struct {
	emailPattern *regexp.Regexp
	datePattern  *regexp.Regexp
}

// NewExtractor compiles the email and date patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		emailPattern: regexp.MustCompile(emailExpr),
		datePattern:  regexp.MustCompile(dateExpr),
	}
}

// Emails returns every email-like substring of text in order of appearance.
func (e *Extractor) Emails(text string) []string {
	return e.emailPattern.FindAllString(text, -1)
}

// Dates returns every date-like substring of text in order of appearance.
// Duplicates are kept.
func (e *Extractor) Dates(text string) []string {
	return e.datePattern.FindAllString(text, -1)
}

// Find extracts both categories from text.
func (e *Extractor) Find(text string) domain.Patterns {
	return domain.Patterns{Emails: e.Emails(text), Dates: e.Dates(text)}
}

var defaultExtractor = NewExtractor()

// FindEmails extracts email addresses with the default extractor.
func FindEmails(text string) []string { return defaultExtractor.Emails(text) }

// FindDates extracts dates with the default extractor.
func FindDates(text string) []string { return defaultExtractor.Dates(text) }

// Find extracts emails and dates with the default extractor.
func Find(text string) domain.Patterns { return defaultExtractor.Find(text) }
