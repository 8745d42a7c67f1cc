package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prelex/internal/config"
	"prelex/internal/driver"
	"prelex/internal/prelex"
)

// settings merges prelex.toml with command-line flags; flags win.
type settings struct {
	cfg     config.Config
	color   bool
	quiet   bool
	timings bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	// fatih/color читает этот флаг глобально (version, подсветка)
	color.NoColor = !useColor

	quiet, err := root.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := root.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return &settings{cfg: cfg, color: useColor, quiet: quiet, timings: timings}, nil
}

func readColorMode(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "", nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// scanFlags registers the flags shared by scan and watch.
func scanFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("ext", nil, "file extensions scanned in directories (default from prelex.toml)")
	cmd.Flags().StringSlice("disable", nil, "token kinds to disable, e.g. email,hashtag")
	cmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	cmd.Flags().Bool("check", false, "verify that every result partitions its input")
	cmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
}

// driverOptions builds scan options from config overridden by flags.
func (s *settings) driverOptions(cmd *cobra.Command) (driver.Options, error) {
	flags := cmd.Flags()
	opts := driver.Options{
		Jobs:       s.cfg.Scan.Jobs,
		Extensions: s.cfg.Scan.Extensions,
		Check:      s.cfg.Scan.Check,
	}
	if flags.Changed("ext") {
		exts, _ := flags.GetStringSlice("ext")
		opts.Extensions = normalizeExts(exts)
	}
	if flags.Changed("jobs") {
		opts.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("check") {
		opts.Check, _ = flags.GetBool("check")
	}

	disabled := s.cfg.Scan.Disable
	if flags.Changed("disable") {
		disabled, _ = flags.GetStringSlice("disable")
	}
	kinds, err := config.ParseKinds(disabled)
	if err != nil {
		return driver.Options{}, err
	}
	opts.Scanner = prelex.New(prelex.Options{Disable: kinds})

	noCache, _ := flags.GetBool("no-cache")
	if s.cfg.Cache.Enabled && !noCache {
		cache, err := openCache(s.cfg)
		if err != nil {
			// кэш лишь оптимизация, без него сканируем как обычно
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func openCache(cfg config.Config) (*driver.DiskCache, error) {
	if cfg.Cache.Dir != "" {
		return driver.OpenDiskCacheAt(cfg.Cache.Dir)
	}
	return driver.OpenDiskCache("prelex")
}
