package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/assessment-gateway/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the analytics tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		cfg.Database.AutoMigrate = false

		db, err := config.InitDatabase(cfg)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get database handle: %w", err)
		}
		defer sqlDB.Close()

		if err := config.Migrate(db); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Migration completed")
		return nil
	},
}
