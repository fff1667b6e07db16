package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "grbpwr-dashboard",
		Short: "Service serving storefront order statistics",
		RunE:  run,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Start the statistics http server",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the grbpwr-dashboard service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 20, "number of sample orders")
	rootCmd.AddCommand(runCmd, migrateCmd, seedCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}
}
