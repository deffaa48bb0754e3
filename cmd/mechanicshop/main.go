package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/cli/migrate"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mechanicshop",
		Short: "Mechanic shop management API",
		Long:  `REST API for an auto repair shop: customers, employees, service catalog, inventory, and service tickets.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
