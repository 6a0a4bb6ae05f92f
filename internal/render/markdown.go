package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"textkit/internal/domain"
)

// AnalysisMarkdown formats the lexical metrics report as markdown.
func AnalysisMarkdown(a domain.Analysis) string {
	var b strings.Builder
	b.WriteString("# Text analysis\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Word count | %d |\n", a.Words)
	fmt.Fprintf(&b, "| Sentence count | %d |\n", a.Sentences)
	fmt.Fprintf(&b, "| Average sentence length | %.2f |\n", a.AverageSentenceLength)
	b.WriteString("\n## Most frequent words\n\n")
	if len(a.TopWords) == 0 {
		b.WriteString("_" + NoneFound + "_\n")
		return b.String()
	}
	b.WriteString("| Word | Count |\n|---|---|\n")
	for _, wc := range a.TopWords {
		fmt.Fprintf(&b, "| %s | %d |\n", wc.Word, wc.Count)
	}
	return b.String()
}

// PatternsMarkdown formats extracted patterns as markdown.
func PatternsMarkdown(p domain.Patterns) string {
	var b strings.Builder
	b.WriteString("# Patterns found\n")
	for _, cat := range []struct {
		title string
		items []string
	}{
		{"Email addresses", p.Emails},
		{"Dates", p.Dates},
	} {
		fmt.Fprintf(&b, "\n## %s\n\n", cat.title)
		if len(cat.items) == 0 {
			b.WriteString("_" + NoneFound + "_\n")
			continue
		}
		for _, it := range cat.items {
			fmt.Fprintf(&b, "- `%s`\n", it)
		}
	}
	return b.String()
}

// ComparisonMarkdown formats similarity scores as markdown.
func ComparisonMarkdown(c domain.Comparison) string {
	return fmt.Sprintf("# Text comparison\n\n| Measure | Score |\n|---|---|\n| Cosine similarity | %.3f |\n| Jaccard index | %.3f |\n",
		c.Cosine, c.Jaccard)
}

// Markdown renders md for the terminal. Style "auto" picks a style from the
// terminal background; any other value names a glamour standard style.
func Markdown(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
