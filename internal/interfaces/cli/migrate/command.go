package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/migration"
	"fieldserve/internal/shared/logger"
)

var (
	env   string
	steps int
)

const scriptsPath = "internal/infrastructure/migration/scripts"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back and inspect database schema migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return runner.Up(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return runner.Down(database.Get(), steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			version, dirty, err := runner.Version(database.Get())
			if err != nil {
				return err
			}
			fmt.Printf("version: %d  dirty: %v\n", version, dirty)
			return nil
		},
	}
}

func setup() (*migration.Runner, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return migration.NewRunner(scriptsPath, logger.NewLogger()), nil
}
