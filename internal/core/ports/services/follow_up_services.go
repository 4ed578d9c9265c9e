package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/dto"
)

// FollowUpSvcFacade manages operator follow-up entries for an animal.
type FollowUpSvcFacade interface {
	CreateFollowUp(ctx context.Context, animalID string, req dto.CreateFollowUpRequest, creatorUserID string) (*domain.FollowUpEntry, error)

	ListFollowUps(ctx context.Context, animalID string) ([]domain.FollowUpEntry, error)

	UpdateFollowUp(ctx context.Context, followUpID string, req dto.UpdateFollowUpRequest, updaterUserID string) (*domain.FollowUpEntry, error)

	DeleteFollowUp(ctx context.Context, followUpID string, deleterUserID string) error
}
