package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opolancoh/employee-permissions/internal/infrastructure/config"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/database"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/seeds"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/repository"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

var (
	env        string
	configPath string
	dataFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Insert the employees and permission types that are missing from the database. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "YAML file with reference data (default: built-in data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	var raw []byte
	if dataFile != "" {
		raw, err = os.ReadFile(dataFile)
		if err != nil {
			return fmt.Errorf("failed to read reference data: %w", err)
		}
	}
	data, err := seeds.LoadReferenceData(raw)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	rows, err := seeds.SeedReferenceData(context.Background(), repository.NewUnitOfWork(database.Get()), data, log)
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rows\n", rows)
	return nil
}
