package cli

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textkit/internal/logger"
	"textkit/internal/render"
	"textkit/internal/shell"
	"textkit/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [FILE]",
	Short: "Open the interactive editor",
	Long: `Open the interactive editor, optionally loading FILE.

Keys:
  F2  load file          F3  save encrypted     F4  decrypt
  F5  analyze            F6  histogram          F7  compare with file
  F8  find patterns      F1  help               ctrl+q  quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	restore, err := redirectLogs(logFile)
	if err != nil {
		return err
	}
	defer restore()

	opts := tui.Options{Chart: chartOptions(appCfg.Histogram.TopWords)}
	if len(args) == 1 {
		opts.InitialPath = args[0]
	}
	m := tui.New(shell.New(newService()), opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func chartOptions(n int) render.ChartOptions {
	return render.ChartOptions{
		Title:  fmt.Sprintf("Top %d words", n),
		Height: appCfg.Histogram.Height,
		Color:  appCfg.Histogram.Color,
	}
}

// redirectLogs sends verbose output to path while the TUI owns the terminal.
// Without --verbose it does nothing.
func redirectLogs(path string) (func(), error) {
	if !logger.IsVerbose() {
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "textkit")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.Section("tui session")
	return func() {
		logger.SetOutput(os.Stderr)
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		_ = f.Close()
	}, nil
}
