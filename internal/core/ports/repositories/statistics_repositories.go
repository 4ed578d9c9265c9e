package repositories

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// StatisticsRepository aggregates flock-wide counters in the database.
type StatisticsRepository interface {
	GetStatisticsOverview(ctx context.Context) (*domain.StatisticsOverview, error)
}
