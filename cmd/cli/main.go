package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/cmd/cli/commands"
	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/clients/genclient"
	"github.com/kambari/kambari-agent/pkg/postgres"
	"github.com/kambari/kambari-agent/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kambari",
		Short: "Kambari Agent - Manage a recurring Bible study program",
		Long: `A CLI tool for managing a recurring Bible study: the member roster,
study series, fair role rotation, study guides, and session reminders.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.GenClient != nil {
				app.GenClient.Close()
			}
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.AddMemberCmd(appRef()))
	rootCmd.AddCommand(commands.ListMembersCmd(appRef()))
	rootCmd.AddCommand(commands.DeactivateMemberCmd(appRef()))
	rootCmd.AddCommand(commands.ReactivateMemberCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveMemberCmd(appRef()))
	rootCmd.AddCommand(commands.SetAvailabilityCmd(appRef()))
	rootCmd.AddCommand(commands.CreateSeriesCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.SendRemindersCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateMaterialsCmd(appRef()))
	rootCmd.AddCommand(commands.ViewMaterialsCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty here and populated by
// initApp before any command runs
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()
	app.Env = env

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// The generation client is optional: without an API key, study guides
	// use the fixed fallback questions
	if apiKey := os.Getenv(app.Cfg.GeminiAPIKeyEnv); apiKey != "" {
		app.Logger.Info("Initializing generation client", zap.String("model", app.Cfg.GeminiModel))
		app.GenClient, err = genclient.NewClient(app.Ctx, apiKey, app.Cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create generation client: %w", err)
		}
	} else {
		app.Logger.Info("No generation API key set, study guides will use fallback questions",
			zap.String("env_var", app.Cfg.GeminiAPIKeyEnv))
	}

	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running database migrations")
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
