package pgsql

import (
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository over one shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewCurrencyRepository(db),
		ExchangeRateRepo: NewExchangeRateRepository(db),
		FavoriteRepo:     NewFavoriteRepository(db),
		SnapshotRepo:     NewSnapshotRepository(db),
		ReportingRepo:    NewReportingRepository(db),
	}
}
