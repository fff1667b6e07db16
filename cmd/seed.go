package main

import (
	"context"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/app"
	"github.com/spf13/cobra"
)

var (
	seedCount int

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert sample orders into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			rep, err := app.OpenRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer rep.Close()
			_, err = app.Seed(ctx, rep.Orders(), time.Now().UTC(), seedCount)
			return err
		},
	}
)
