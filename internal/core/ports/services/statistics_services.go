package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// StatisticsSvcFacade serves the dashboard aggregate.
type StatisticsSvcFacade interface {
	GetOverview(ctx context.Context) (*domain.StatisticsOverview, error)
}
