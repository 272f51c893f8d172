package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opolancoh/employee-permissions/internal/interfaces/cli/migrate"
	"github.com/opolancoh/employee-permissions/internal/interfaces/cli/seed"
	"github.com/opolancoh/employee-permissions/internal/interfaces/cli/server"
	"github.com/opolancoh/employee-permissions/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "permissions",
		Short:   "Employee permissions service",
		Long:    `Grants permission types to employees, records every operation on the event log and keeps a search index of the grants.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
