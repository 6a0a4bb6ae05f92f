// Package cli implements the textkit command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textkit/internal/config"
	"textkit/internal/domain"
	"textkit/internal/logger"
	"textkit/internal/render"
	"textkit/internal/service"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
)

var (
	version = "dev"

	cfgPath string
	verbose bool
	format  string
	mdStyle string
	shift   int
	logFile string
	appCfg  *config.AppConfig
	mdWidth = 80
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "Analyze, compare and obfuscate plain text files",
	Long: `textkit computes lexical statistics, compares texts by cosine similarity
and Jaccard index, finds email addresses and dates, and applies a Caesar
shift to obfuscate text.

Run without a command to open the interactive editor.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to YAML or TOML config (default ./textkit.yaml or ~/.config/textkit/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	pf.StringVar(&format, "format", formatText, "output format: text or markdown")
	pf.StringVar(&mdStyle, "style", "auto", "markdown style (auto, dark, light, notty, ...)")
	pf.IntVar(&shift, "shift", 0, "cipher shift (overrides config)")
	pf.StringVar(&logFile, "log-file", "textkit-debug.log", "where --verbose writes while the interactive editor runs")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if format != formatText && format != formatMarkdown {
		return fmt.Errorf("unknown format %q: %w", format, domain.ErrInvalidInput)
	}
	var (
		cfg  *config.AppConfig
		used = cfgPath
		err  error
	)
	if cfgPath == "" {
		cfg, used, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", used, err)
	}
	if cmd.Flags().Changed("shift") {
		cfg.Cipher.Shift = shift
	}
	logger.Debug("config %s: shift=%d top_words=%d", used, cfg.Cipher.Shift, cfg.Analysis.TopWords)
	appCfg = cfg
	return nil
}

func newService() *service.TextServiceImpl {
	return service.NewTextService(service.Options{
		Shift:            appCfg.Cipher.Shift,
		TopWords:         appCfg.Analysis.TopWords,
		HistogramWords:   appCfg.Histogram.TopWords,
		DefaultExtension: appCfg.Files.DefaultExtension,
	})
}

// emit writes either the plain text or the rendered markdown report.
func emit(w io.Writer, text, md string) error {
	if format == formatMarkdown {
		out, err := render.Markdown(md, mdWidth, mdStyle)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	_, err := io.WriteString(w, text)
	return err
}
