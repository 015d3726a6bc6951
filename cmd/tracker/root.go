package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Exercise tracker API",
	Long: `Exercise tracker serves a small REST API for users and their exercise logs.

Configuration is read from the environment:

  PORT                  listen port (default 3000)
  STORE_DRIVER          postgres, mongo or memory (default postgres)
  DATABASE_URL          Postgres connection string
  MONGO_URI             MongoDB connection string
  LOG_DIR, LOG_LEVEL    log file directory and level

Running without a subcommand is the same as 'tracker serve'.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
