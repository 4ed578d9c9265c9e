package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AnimalRepo      AnimalRepositoryWithTx
	SaleHistoryRepo SaleHistoryRepositoryWithTx
	FollowUpRepo    FollowUpRepository
	PhotoRepo       PhotoRepository
	IncubationRepo  IncubationRepository
	StatisticsRepo  StatisticsRepository
	ShareLinkRepo   ShareLinkRepository
}
