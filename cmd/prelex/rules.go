package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"prelex/internal/config"
	"prelex/internal/prelex"
	"prelex/internal/token"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the recognizer priority table",
	Long: `Rules lists recognizers in the order they are tried at each position.
The sentence-boundary check runs after all of them and cannot be disabled.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().StringSlice("disable", nil, "show the table with these kinds disabled")
}

type ruleRow struct {
	Priority int    `json:"priority"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	POS      string `json:"pos"`
	Enabled  bool   `json:"enabled"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	names := st.cfg.Scan.Disable
	if cmd.Flags().Changed("disable") {
		names, _ = cmd.Flags().GetStringSlice("disable")
	}
	disabled, err := config.ParseKinds(names)
	if err != nil {
		return err
	}
	rows := ruleRows(disabled)

	switch strings.ToLower(formatFlag) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "pretty":
		return printRules(cmd.OutOrStdout(), rows)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", formatFlag)
	}
}

func ruleRows(disabled []token.Kind) []ruleRow {
	active := prelex.New(prelex.Options{Disable: disabled}).Rules()
	rules := prelex.Rules()
	rows := make([]ruleRow, 0, len(rules)+1)
	for i, r := range rules {
		rows = append(rows, ruleRow{
			Priority: i + 1,
			Name:     r.Name,
			Kind:     r.Kind.String(),
			POS:      r.Kind.POS().String(),
			Enabled: slices.ContainsFunc(active, func(a prelex.Rule) bool {
				return a.Kind == r.Kind
			}),
		})
	}
	rows = append(rows, ruleRow{
		Priority: len(rules) + 1,
		Name:     "boundary",
		Kind:     token.Boundary.String(),
		POS:      token.Boundary.POS().String(),
		Enabled:  true,
	})
	return rows
}

func printRules(out io.Writer, rows []ruleRow) error {
	for _, r := range rows {
		state := ""
		if !r.Enabled {
			state = "  (disabled)"
		}
		if _, err := fmt.Fprintf(out, "%2d  %-11s %-11s %s%s\n", r.Priority, r.Name, r.Kind, r.POS, state); err != nil {
			return err
		}
	}
	return nil
}
