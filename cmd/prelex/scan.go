package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"prelex/internal/driver"
	"prelex/internal/format"
	"prelex/internal/observ"
	"prelex/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [file|dir|-]",
	Short: "Pre-lex a file, a directory or stdin",
	Long: `Scan splits text into recognized tokens and unrecognized spans.
Without an argument, or with "-", stdin is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "", "output format (pretty|json|jsonl, default from prelex.toml)")
	scanCmd.Flags().Bool("spans", false, "also print unrecognized spans")
	scanCmd.Flags().Bool("values", false, "print the interpreted value of each token")
	scanCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	scanFlags(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
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
	phase := timer.Begin("config")
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := st.driverOptions(cmd)
	if err != nil {
		return err
	}
	outFormat, err := resolveFormat(cmd, st)
	if err != nil {
		return err
	}
	renderOpts, err := renderOptions(cmd, st)
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	timer.End(phase, "")

	target := "-"
	if len(args) == 1 {
		target = args[0]
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if target == "-" {
		phase = timer.Begin("scan")
		fs, r, err := driver.ScanReader(ctx, "<stdin>", cmd.InOrStdin(), opts)
		timer.End(phase, "stdin")
		if err != nil {
			return err
		}
		err = format.Render(out, outFormat, fs, r.FileID, r.Result, renderOpts)
		printTimings(cmd, st, timer)
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		phase = timer.Begin("scan")
		fs, r, err := driver.ScanFile(ctx, target, opts)
		timer.End(phase, cachedNote(r.Cached))
		if err != nil {
			return err
		}
		err = format.Render(out, outFormat, fs, r.FileID, r.Result, renderOpts)
		printTimings(cmd, st, timer)
		return err
	}

	phase = timer.Begin("scan")
	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if shouldUseTUI(mode) && !st.quiet {
		fs, results, err = runScanDirWithUI(ctx, target, opts)
	} else {
		fs, results, err = driver.ScanDir(ctx, target, opts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	phase = timer.Begin("render")
	failed, err := renderDir(out, cmd.ErrOrStderr(), outFormat, fs, results, renderOpts, st.quiet)
	timer.End(phase, "")
	printTimings(cmd, st, timer)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// renderDir prints every successful result and reports failures on errOut.
func renderDir(out, errOut io.Writer, kind format.Kind, fs *source.FileSet, results []driver.FileResult, opts format.Options, quiet bool) (int, error) {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if kind == format.KindPretty && !quiet {
			header := fmt.Sprintf("== %s (%d tokens", r.Path, len(r.Result.Tokens))
			if r.Cached {
				header += ", cached"
			}
			if _, err := fmt.Fprintln(out, header+")"); err != nil {
				return failed, err
			}
		}
		if err := format.Render(out, kind, fs, r.FileID, r.Result, opts); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func resolveFormat(cmd *cobra.Command, st *settings) (format.Kind, error) {
	value := st.cfg.Scan.Format
	if cmd.Flags().Changed("format") {
		value, _ = cmd.Flags().GetString("format")
	}
	return format.ParseKind(value)
}

func renderOptions(cmd *cobra.Command, st *settings) (format.Options, error) {
	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return format.Options{}, fmt.Errorf("failed to get spans flag: %w", err)
	}
	values, err := cmd.Flags().GetBool("values")
	if err != nil {
		return format.Options{}, fmt.Errorf("failed to get values flag: %w", err)
	}
	return format.Options{Color: st.color, ShowSpans: spans, Values: values}, nil
}

func cachedNote(cached bool) string {
	if cached {
		return "cached"
	}
	return ""
}
