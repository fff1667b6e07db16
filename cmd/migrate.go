package main

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/config"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply MySQL schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Store.Type != config.StoreMySQL {
			return fmt.Errorf("migrations apply to the mysql store only, store.type is %q", cfg.Store.Type)
		}
		cfg.DB.Automigrate = true
		db, err := store.New(context.Background(), cfg.DB)
		if err != nil {
			return err
		}
		db.Close()
		return nil
	},
}
