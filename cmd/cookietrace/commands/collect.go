package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// collect <url>: capture raw cookie CSVs without analysing them.
func collectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect <url>",
		Short: "Capture cookies from a target without analysing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, run, err := capture(cmd.Context(), args[0])
			if err != nil || st == nil {
				return err
			}
			fmt.Printf("Captured %d samples across %d cookies into %q\n", run.Samples, run.Cookies, st.Dir())
			return nil
		},
	}
	addCaptureFlags(cmd)
	return cmd
}
