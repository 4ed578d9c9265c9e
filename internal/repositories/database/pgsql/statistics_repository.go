package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
)

// statisticsRepository implements the StatisticsRepository interface
type statisticsRepository struct {
	BaseRepository
}

// newStatisticsRepository creates a new statistics repository
func newStatisticsRepository(db *pgxpool.Pool) portsrepo.StatisticsRepository {
	return &statisticsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetStatisticsOverview aggregates the flock-wide dashboard counters.
func (r *statisticsRepository) GetStatisticsOverview(ctx context.Context) (*domain.StatisticsOverview, error) {
	overview := &domain.StatisticsOverview{
		SpeciesCounts: map[string]int64{},
	}

	countersQuery := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'available') AS available,
			COUNT(*) FILTER (WHERE status = 'breeding') AS breeding,
			COUNT(*) FILTER (WHERE status = 'paired') AS paired,
			COUNT(*) FILTER (WHERE status = 'incubating') AS incubating,
			COUNT(*) FILTER (WHERE status = 'sold') AS sold,
			COUNT(*) FILTER (WHERE returned_at IS NOT NULL) AS returned,
			COALESCE(SUM(sale_price) FILTER (WHERE status = 'sold'), 0) AS open_sale_revenue
		FROM animals
		WHERE deleted_at IS NULL;
	`
	var revenue decimal.Decimal
	err := r.Pool.QueryRow(ctx, countersQuery).Scan(
		&overview.TotalAnimals,
		&overview.AvailableAnimals,
		&overview.BreedingAnimals,
		&overview.PairedAnimals,
		&overview.IncubatingAnimals,
		&overview.SoldAnimals,
		&overview.ReturnedAnimals,
		&revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying animal counters: %w", err)
	}
	overview.OpenSaleRevenue = revenue

	speciesQuery := `
		SELECT species, COUNT(*)
		FROM animals
		WHERE deleted_at IS NULL
		GROUP BY species;
	`
	rows, err := r.Pool.Query(ctx, speciesQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying species counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var species string
		var count int64
		if err := rows.Scan(&species, &count); err != nil {
			return nil, fmt.Errorf("error scanning species count row: %w", err)
		}
		overview.SpeciesCounts[species] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating species count rows: %w", err)
	}

	err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sale_history`).Scan(&overview.ArchivedCycles)
	if err != nil {
		return nil, fmt.Errorf("error counting archived sale cycles: %w", err)
	}

	return overview, nil
}
