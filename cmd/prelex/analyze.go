package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prelex/internal/driver"
	"prelex/internal/format"
	"prelex/internal/morph"
	"prelex/internal/observ"
	"prelex/internal/source"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [file|-]",
	Short: "Pre-lex a file and run the morphological analyzer over the rest",
	Long: `Analyze pre-lexes the input and hands every unrecognized span to the
kagome analyzer (IPA dictionary). Recognized tokens are kept whole.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("mode", "", "kagome mode (normal|search|extended, default from prelex.toml)")
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json|jsonl)")
	analyzeCmd.Flags().StringSlice("disable", nil, "token kinds to disable, e.g. email,hashtag")
	analyzeCmd.Flags().Bool("check", false, "verify that the pre-lexed result partitions its input")
	analyzeCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	timer := observ.NewTimer()
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := st.driverOptions(cmd)
	if err != nil {
		return err
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outFormat, err := format.ParseKind(formatFlag)
	if err != nil {
		return err
	}
	mode := st.cfg.Analyze.Mode
	if cmd.Flags().Changed("mode") {
		mode, _ = cmd.Flags().GetString("mode")
	}

	var analyzer *morph.Kagome
	if err := timer.Track("dictionary", func() (string, error) {
		analyzer, err = morph.NewKagome(mode)
		return mode, err
	}); err != nil {
		return err
	}

	var (
		fs *source.FileSet
		r  driver.FileResult
	)
	phase := timer.Begin("prelex")
	if len(args) == 0 || args[0] == "-" {
		fs, r, err = driver.ScanReader(cmd.Context(), "<stdin>", cmd.InOrStdin(), opts)
	} else {
		fs, r, err = driver.ScanFile(cmd.Context(), args[0], opts)
	}
	timer.End(phase, cachedNote(r.Cached))
	if err != nil {
		return err
	}

	phase = timer.Begin("analyze")
	elems, err := morph.Merge(fs.Get(r.FileID).Content, r.Result, analyzer)
	timer.End(phase, fmt.Sprintf("%d elements", len(elems)))
	if err != nil {
		return err
	}

	err = format.Elements(cmd.OutOrStdout(), outFormat, elems, format.Options{Color: st.color})
	printTimings(cmd, st, timer)
	return err
}
