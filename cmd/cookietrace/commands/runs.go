package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var runsLimit int

// runs: list capture runs recorded in the catalog, newest first.
func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded capture runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := wire.Runs.ListRuns(cmd.Context(), runsLimit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STARTED\tDOMAIN\tURL\tREQUESTS\tCOOKIES\tSAMPLES\tDIR")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					time.Unix(r.StartedUTC, 0).UTC().Format(time.RFC3339),
					r.Domain, r.URL, r.Requests, r.Cookies, r.Samples, r.OutDir)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
	return cmd
}
