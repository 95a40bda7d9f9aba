package main

import (
	"os"

	"github.com/spf13/cobra"

	"fieldserve/internal/interfaces/cli/migrate"
	"fieldserve/internal/interfaces/cli/seed"
	"fieldserve/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldserve",
		Short: "FieldServe - restaurant equipment field service backend",
		Long:  `FieldServe runs the field service backend for restaurant equipment support, including the HTTP API, schema migrations and fixture loading.`,
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
