package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"prelex/internal/driver"
	"prelex/internal/token"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] path...",
	Short: "Re-scan files whenever they change",
	Long: `Watch scans every matching file under the given paths, then prints a
one-line summary each time a file is written. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", driver.DefaultDebounce, "wait this long after a write before re-scanning")
	scanFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := st.driverOptions(cmd)
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if !st.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl+C to stop)\n", strings.Join(args, ", "))
	}
	return driver.Watch(ctx, args, opts, debounce, func(r driver.FileResult) {
		printWatchLine(out, r, time.Now())
	})
}

// printWatchLine: "15:04:05 notes.txt  12 tokens  Date=2 Url=1 (0.4ms)".
func printWatchLine(out io.Writer, r driver.FileResult, now time.Time) {
	stamp := now.Format("15:04:05")
	if r.Err != nil {
		fmt.Fprintf(out, "%s %s  error: %v\n", stamp, r.Path, r.Err)
		return
	}
	counts := r.Result.Counts()
	parts := make([]string, 0, len(counts))
	for _, k := range token.Kinds {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	line := fmt.Sprintf("%s %s  %d tokens", stamp, r.Path, len(r.Result.Tokens))
	if len(parts) > 0 {
		line += "  " + strings.Join(parts, " ")
	}
	line += fmt.Sprintf(" (%.1fms)", float64(r.Elapsed)/float64(time.Millisecond))
	fmt.Fprintln(out, line)
}
