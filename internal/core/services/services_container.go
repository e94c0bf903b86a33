package services

import (
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/platform/config"
	"github.com/centavohq/centavo_backend/internal/platform/ratelimit"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	feed RateFeed,
	syncLimiter ratelimit.Limiter,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first: it backs the classifier every conversion path needs.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.FavoriteRepo, container.Currency)
	container.Favorite = NewFavoriteService(repos.FavoriteRepo, repos.ExchangeRateRepo)
	container.RateSync = NewRateSyncService(feed, repos.ExchangeRateRepo, syncLimiter, cfg.RateSyncCooldown, cfg.RateSyncMaxEntries)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.ExchangeRate, container.Currency)
	container.SnapshotRepair = NewSnapshotRepairService(repos.SnapshotRepo, repos.ExchangeRateRepo, container.Currency, cfg.RepairFlagFactor)

	return container
}
