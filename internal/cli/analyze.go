package cli

import (
	"io"

	"github.com/spf13/cobra"

	"textkit/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Print word and sentence statistics",
	Long: `Print the word count, sentence count, average sentence length and the
most frequent words of FILE.

Sentences are counted as the number of '.', '!' and '?' characters.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		doc, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		a := svc.Analyze(doc.Content)
		return emit(cmd.OutOrStdout(), render.Analysis(a), render.AnalysisMarkdown(a))
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns FILE",
	Short: "List email addresses and dates found in FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		doc, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		p := svc.FindPatterns(doc.Content)
		return emit(cmd.OutOrStdout(), render.Patterns(p), render.PatternsMarkdown(p))
	},
}

var histogramCmd = &cobra.Command{
	Use:   "histogram FILE",
	Short: "Draw a bar chart of the most frequent words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		doc, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		words, err := svc.Histogram(doc.Content)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), render.BarChart(words, chartOptions(len(words))))
		return err
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare FILE1 FILE2",
	Short: "Print cosine similarity and Jaccard index of two files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		primary, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		other, err := svc.LoadDocument(args[1])
		if err != nil {
			return err
		}
		c := svc.Compare(primary.Content, other.Content)
		return emit(cmd.OutOrStdout(), render.Comparison(c)+"\n", render.ComparisonMarkdown(c))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd, patternsCmd, histogramCmd, compareCmd)
}
