package repositories

import (
	"context"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// FollowUpRepository defines persistence for follow-up entries.
type FollowUpRepository interface {
	SaveFollowUp(ctx context.Context, entry domain.FollowUpEntry) error

	FindFollowUpByID(ctx context.Context, followUpID string) (*domain.FollowUpEntry, error)

	// ListFollowUpsByAnimal returns an animal's follow-ups ordered by follow-up date.
	ListFollowUpsByAnimal(ctx context.Context, animalID string) ([]domain.FollowUpEntry, error)

	UpdateFollowUp(ctx context.Context, entry domain.FollowUpEntry) error

	DeleteFollowUp(ctx context.Context, followUpID string, deletedBy string, now time.Time) error
}
