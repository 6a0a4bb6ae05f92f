package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textkit/internal/domain"
)

const (
	barGlyph    = "█"
	minColWidth = 3
)

// ChartOptions configures BarChart.
type ChartOptions struct {
	Title  string
	Height int
	Color  string
}

// BarChart draws a vertical bar chart with one column per word, words on the
// x-axis and frequencies on the y-axis. Charts never use more rows than the
// largest count, so every row maps to a whole frequency.
func BarChart(words []domain.WordCount, opts ChartOptions) string {
	if len(words) == 0 {
		return ""
	}
	maxCount := 0
	colWidth := minColWidth
	for _, wc := range words {
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
		if w := lipgloss.Width(wc.Word); w > colWidth {
			colWidth = w
		}
	}
	rows := opts.Height
	if rows <= 0 || rows > maxCount {
		rows = maxCount
	}
	heights := make([]int, len(words))
	for i, wc := range words {
		h := int(math.Round(float64(wc.Count) * float64(rows) / float64(maxCount)))
		if h < 1 && wc.Count > 0 {
			h = 1
		}
		heights[i] = h
	}

	labelWidth := len(strconv.Itoa(maxCount))
	bar := lipgloss.NewStyle()
	if opts.Color != "" {
		bar = bar.Foreground(lipgloss.Color(opts.Color))
	}
	axis := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(axis.Render(opts.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(axis.Render("Frequency"))
	b.WriteString("\n")
	for row := rows; row >= 1; row-- {
		label := int(math.Round(float64(row) * float64(maxCount) / float64(rows)))
		b.WriteString(padLeft(strconv.Itoa(label), labelWidth))
		b.WriteString(" │")
		for _, h := range heights {
			b.WriteString(" ")
			if h >= row {
				b.WriteString(bar.Render(strings.Repeat(barGlyph, colWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		b.WriteString("\n")
	}
	plotWidth := len(words) * (colWidth + 1)
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", plotWidth))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	for _, wc := range words {
		b.WriteString(" ")
		b.WriteString(center(wc.Word, colWidth))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(center(axis.Render("Word"), plotWidth))
	b.WriteString("\n")
	return b.String()
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
