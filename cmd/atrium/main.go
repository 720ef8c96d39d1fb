package main

import (
	"os"

	"github.com/spf13/cobra"

	"atrium/internal/interfaces/cli/migrate"
	"atrium/internal/interfaces/cli/server"
)

// @title Atrium API
// @version 1.0
// @description Hierarchical back-office authorization service.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "atrium",
		Short: "Atrium - hierarchical back-office authorization service",
		Long:  `Atrium manages a page and action catalog, per-user and per-role permission grants, and serves permission-filtered navigation over HTTP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
