package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prelex/internal/observ"
)

// printTimings writes the phase summary to stderr when --timings is set.
func printTimings(cmd *cobra.Command, st *settings, timer *observ.Timer) {
	if st == nil || !st.timings || timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
