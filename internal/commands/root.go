package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/core/services"
	"github.com/kessan-app/kessan_backend/internal/platform/config"
	"github.com/kessan-app/kessan_backend/internal/platform/logging"
	"github.com/kessan-app/kessan_backend/internal/repositories/database/pgsql"
	"github.com/kessan-app/kessan_backend/internal/utils/accounting"
	"github.com/kessan-app/kessan_backend/pkg/database"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kessan",
		Short: "Double-entry bookkeeping and period-end adjustment engine",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCompanyCommand())
	rootCmd.AddCommand(newPeriodCommand())
	rootCmd.AddCommand(newAdjustCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// withServices loads the configuration, connects to the database and hands a
// wired service container to fn, closing the pool when fn returns.
func withServices(ctx context.Context, fn func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.IsProduction)
	slog.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	accounting.CurrencyPrecision = cfg.CurrencyPrecision

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	svcs := services.NewServiceContainer(&repos, cfg)

	return fn(ctx, svcs, cfg)
}
