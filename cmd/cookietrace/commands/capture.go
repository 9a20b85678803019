package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cookietrace/internal/app"
	"cookietrace/internal/collect"
	"cookietrace/internal/domain"
	"cookietrace/internal/store"
)

var (
	payloadPath string
	requests    int
	throttle    bool
	outDir      string
)

// addCaptureFlags attaches the flags shared by run and collect.
func addCaptureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&payloadPath, "payload", "p", "",
		"credentials file for authenticating: one name,value line per form field (include the submit button field)")
	cmd.Flags().IntVarP(&requests, "requests", "r", 0,
		fmt.Sprintf("number of requests in the range [%d, %d] (default %d)", app.MinRequests, app.MaxRequests, app.DefaultRequests))
	cmd.Flags().BoolVarP(&throttle, "throttle", "t", false,
		"delay requests by 0.5s; useful when an outputted chart flattens into a horizontal line")
	cmd.Flags().StringVar(&outDir, "out", "",
		"output directory (default <domain>_<ddmmyy_HHMMSS>)")
}

// capture runs one collection against rawurl and records it in the catalog.
// It returns a nil store when the target set no cookies at all.
func capture(ctx context.Context, rawurl string) (*store.SeriesStore, domain.Run, error) {
	cfg := wire.Config

	opts := domain.CollectOptions{
		Requests:  cfg.Requests,
		Throttle:  throttle,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}
	if payloadPath != "" {
		payload, err := collect.ReadPayload(payloadPath)
		if err != nil {
			return nil, domain.Run{}, err
		}
		opts.Payload = payload
	}
	if requests != 0 {
		opts.Requests = requests
		if requests < app.MinRequests || requests > app.MaxRequests {
			fmt.Printf("Number of requests must be in the range [%d, %d], defaulting to %d.\n",
				app.MinRequests, app.MaxRequests, app.DefaultRequests)
			opts.Requests = app.DefaultRequests
		}
	}

	dir := outDir
	if dir == "" {
		label, err := collect.SiteLabel(rawurl)
		if err != nil {
			return nil, domain.Run{}, err
		}
		dir = collect.OutDirName(label, time.Now())
	}
	st, err := store.NewSeriesStore(dir)
	if err != nil {
		return nil, domain.Run{}, err
	}
	fmt.Printf("Getting cookies from %s\n", rawurl)
	fmt.Printf("Results will be written to %q\n", dir)

	run, err := wire.Collector.Collect(ctx, rawurl, opts, st)
	if run.Samples == 0 {
		st.RemoveIfEmpty()
	}
	if err != nil {
		return nil, domain.Run{}, err
	}
	if run.Samples == 0 {
		fmt.Println("No cookies were set by the target.")
		return nil, run, nil
	}

	if err := wire.Runs.SaveRun(ctx, run); err != nil {
		return nil, domain.Run{}, err
	}
	return st, run, nil
}
