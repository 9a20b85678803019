package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cookietrace/internal/analyze"
	"cookietrace/internal/store"
)

// analyze <dir>: encode and chart a previously captured directory.
func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <dir>",
		Short: "Encode and chart a previously captured directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.OpenSeriesStore(args[0])
			if err != nil {
				return err
			}
			return analyzeStore(cmd.Context(), st)
		},
	}
}

func analyzeStore(ctx context.Context, st *store.SeriesStore) error {
	stats, err := wire.Pipeline.Run(ctx, st)
	if err != nil {
		return err
	}
	printStats(stats)
	fmt.Println("Done!")
	return nil
}

func printStats(stats []analyze.Stats) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COOKIE\tSAMPLES\tDISTINCT\tREPEAT\tENTROPY\tSPREAD")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f%%\t%.2f\t%.3f\n",
			s.Name, s.Samples, s.Distinct, s.Repeat*100, s.Entropy, s.Spread)
	}
	_ = tw.Flush()
}
