package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	animalRepo := newPgxAnimalRepository(dbPool)
	saleHistoryRepo := newPgxSaleHistoryRepository(dbPool, animalRepo)
	followUpRepo := newPgxFollowUpRepository(dbPool)
	photoRepo := newPgxPhotoRepository(dbPool)
	incubationRepo := newPgxIncubationRepository(dbPool, animalRepo)
	statisticsRepo := newStatisticsRepository(dbPool)
	shareLinkRepo := newPgxShareLinkRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AnimalRepo:      animalRepo,
		SaleHistoryRepo: saleHistoryRepo,
		FollowUpRepo:    followUpRepo,
		PhotoRepo:       photoRepo,
		IncubationRepo:  incubationRepo,
		StatisticsRepo:  statisticsRepo,
		ShareLinkRepo:   shareLinkRepo,
	}
}
