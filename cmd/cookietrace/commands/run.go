package commands

import (
	"github.com/spf13/cobra"
)

// run <url>: capture cookies, then encode and chart them in one go.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <url>",
		Short: "Capture cookies from a target and chart their predictability",
		Long: `Capture cookies from a target, then encode and chart them. If authenticating,
provide the URL of the form to post data to and a payload file (-p).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := capture(cmd.Context(), args[0])
			if err != nil || st == nil {
				return err
			}
			return analyzeStore(cmd.Context(), st)
		},
	}
	addCaptureFlags(cmd)
	return cmd
}
