package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/InteriMed/Medishift-sub000/cmd/cli/commands"
	"github.com/InteriMed/Medishift-sub000/internal/config"
	"github.com/InteriMed/Medishift-sub000/pkg/postgres"
	"github.com/InteriMed/Medishift-sub000/pkg/utils/logging"
)

var (
	configPath string
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{Ctx: context.Background()}

	rootCmd := &cobra.Command{
		Use:   "medishift",
		Short: "Medishift CLI - Validate shift placements and resolve coverage gaps",
		Long:  `A CLI for validating healthcare shift placements against labor-time rules and ranking workers to fill coverage gaps.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: medishift_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.ValidateShiftCmd(app))
	rootCmd.AddCommand(commands.CreateShiftCmd(app))
	rootCmd.AddCommand(commands.ResolveGapCmd(app))
	rootCmd.AddCommand(commands.ListWorkersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and database
func initApp() error {
	a := app

	var err error
	a.Logger, err = logging.InitLogger("medishift")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.Logger.Debug("Loading configuration")
	if configPath != "" {
		a.Cfg, err = config.LoadFromPath(configPath)
	} else {
		a.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a.Logger.Debug("Connecting to database")
	database, err := postgres.NewDB(a.Ctx, a.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(a.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a.Database = database
	a.Logger.Info("Application initialized", zap.String("config", configPath))

	return nil
}
