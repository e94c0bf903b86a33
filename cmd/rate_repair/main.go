package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/centavohq/centavo_backend/internal/adapters/database/pgsql"
	"github.com/centavohq/centavo_backend/internal/core/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/platform/config"
	"github.com/centavohq/centavo_backend/pkg/database"
	"github.com/urfave/cli/v2"
)

// rate_repair scans historical asset snapshots for USD balances computed
// with the conversion applied in the wrong direction and optionally
// rewrites them from current rates.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "rate_repair",
		Usage: "scan asset snapshots for corrupted USD balances",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Value: true,
				Usage: "report what would change without writing (disable with --dry-run=false)",
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "limit the scan to one currency code",
			},
		},
		Action: runRepair,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("Repair run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runRepair(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	currencyService := services.NewCurrencyService(repos.CurrencyRepo)
	repairService := services.NewSnapshotRepairService(
		repos.SnapshotRepo,
		repos.ExchangeRateRepo,
		currencyService,
		cfg.RepairFlagFactor,
	)

	opts := dto.RepairOptions{
		DryRun:       c.Bool("dry-run"),
		CurrencyCode: c.String("currency"),
	}

	report, err := repairService.RepairSnapshots(ctx, opts)
	if err != nil {
		return err
	}

	for _, line := range report.Lines {
		fmt.Println(line)
	}
	mode := "write"
	if opts.DryRun {
		mode = "dry-run"
	}
	fmt.Printf("%s: scanned=%d flagged=%d fixed=%d skipped=%d\n",
		mode, report.Scanned, report.Flagged, report.Fixed, report.Skipped)
	return nil
}
