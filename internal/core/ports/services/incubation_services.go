package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/dto"
)

// IncubationSvcFacade tracks clutches for mated pairs and drives the
// incubating animal status on both parents.
type IncubationSvcFacade interface {
	// StartIncubation opens a clutch record; the father and mother must be
	// paired with each other. Both move to incubating.
	StartIncubation(ctx context.Context, req dto.StartIncubationRequest, actorUserID string) (*domain.IncubationRecord, error)

	GetIncubation(ctx context.Context, recordID string) (*domain.IncubationRecord, error)

	ListIncubations(ctx context.Context, filter portsrepo.ListIncubationFilter) ([]domain.IncubationRecord, int64, error)

	// UpdateIncubation adjusts an in-progress record (egg count, expected
	// hatch date, notes).
	UpdateIncubation(ctx context.Context, recordID string, req dto.UpdateIncubationRequest, actorUserID string) (*domain.IncubationRecord, error)

	// CompleteIncubation closes the clutch as hatched; parents revert to paired.
	CompleteIncubation(ctx context.Context, recordID string, hatchedCount int, actorUserID string) (*domain.IncubationRecord, error)

	// FailIncubation closes the clutch as failed; parents revert to paired.
	FailIncubation(ctx context.Context, recordID string, notes *string, actorUserID string) (*domain.IncubationRecord, error)
}
