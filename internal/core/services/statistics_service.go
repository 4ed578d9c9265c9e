package services

import (
	"context"
	"log/slog"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

type statisticsService struct {
	statsRepo portsrepo.StatisticsRepository
}

// NewStatisticsService creates a new statistics service.
func NewStatisticsService(statsRepo portsrepo.StatisticsRepository) portssvc.StatisticsSvcFacade {
	return &statisticsService{statsRepo: statsRepo}
}

var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

func (s *statisticsService) GetOverview(ctx context.Context) (*domain.StatisticsOverview, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	overview, err := s.statsRepo.GetStatisticsOverview(ctx)
	if err != nil {
		logger.Error("Failed to load statistics overview", slog.String("error", err.Error()))
		return nil, err
	}
	if overview.SpeciesCounts == nil {
		overview.SpeciesCounts = map[string]int64{}
	}
	return overview, nil
}
