package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/bootstrap"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/config"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Store.Driver != config.DriverPostgres {
			return fmt.Errorf("migrate requires STORE_DRIVER=%s, got %q", config.DriverPostgres, cfg.Store.Driver)
		}

		log, err := bootstrap.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		return db.Migrate(cmd.Context(), log, cfg.Store.DatabaseURL)
	},
}
