package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	FavoriteRepo     FavoriteRepositoryFacade
	SnapshotRepo     SnapshotRepositoryFacade
	ReportingRepo    ReportingRepository
}
