package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// TimelineSvcFacade produces the merged, time-ordered event view for one
// animal. Pure read-side projection; never writes.
type TimelineSvcFacade interface {
	BuildTimeline(ctx context.Context, animalID string) ([]domain.TimelineEvent, error)
}
