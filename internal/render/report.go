// Package render formats analysis results for the terminal.
package render

import (
	"fmt"
	"strings"

	"textkit/internal/domain"
)

// NoneFound is shown for an empty pattern category.
const NoneFound = "none found"

// Analysis formats the lexical metrics report.
func Analysis(a domain.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word count: %d\n", a.Words)
	fmt.Fprintf(&b, "Sentence count: %d\n", a.Sentences)
	fmt.Fprintf(&b, "Average sentence length: %.2f\n", a.AverageSentenceLength)
	b.WriteString("Most frequent words:\n")
	for _, wc := range a.TopWords {
		fmt.Fprintf(&b, " - %s: %d\n", wc.Word, wc.Count)
	}
	return b.String()
}

// Patterns formats extracted emails and dates, stating when a category is empty.
func Patterns(p domain.Patterns) string {
	var b strings.Builder
	b.WriteString("Patterns found:\n")
	writeCategory(&b, "Email addresses", p.Emails)
	writeCategory(&b, "Dates", p.Dates)
	return b.String()
}

func writeCategory(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s: %s\n", title, NoneFound)
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, " - %s\n", it)
	}
}

// Comparison formats both similarity scores with three decimals.
func Comparison(c domain.Comparison) string {
	return fmt.Sprintf("Cosine similarity: %.3f\nJaccard index: %.3f", c.Cosine, c.Jaccard)
}
