package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cookietrace/internal/app"
	"cookietrace/internal/log"
)

var (
	home     string
	logLevel string
	wire     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cookietrace",
		Short: "Cookie value predictability visualisation tool",
		Long: `cookietrace opens repeated sessions against a target URL, records every
cookie the server sets, encodes the observed values into decimals and charts
them over time. A session token built from a counter or clock draws a visible
trend; a well-generated one draws noise.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Configure(log.Config{Level: logLevel})
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cookietrace")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.Load(home)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.cookietrace)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(runCmd(), collectCmd(), analyzeCmd(), runsCmd())
	return root.Execute()
}
