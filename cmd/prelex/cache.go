package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the scan result cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached scan result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cache, err := openCache(st.cfg)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		n := cache.Len()
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clean %q: %w", cache.Dir(), err)
		}
		if !st.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries from %s\n", n, cache.Dir())
		}
		return nil
	},
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the cache location and size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cache, err := openCache(st.cfg)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		state := "enabled"
		if !st.cfg.Cache.Enabled {
			state = "disabled in " + st.cfg.Path
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dir:     %s\nentries: %d\nstate:   %s\n", cache.Dir(), cache.Len(), state)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
}
