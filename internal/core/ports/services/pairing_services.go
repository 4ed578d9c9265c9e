package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// PairingResult carries both sides of a pairing after it is established.
type PairingResult struct {
	Male   domain.Animal
	Female domain.Animal
}

// PairingSvcFacade owns the symmetric breeding-bond relationship.
type PairingSvcFacade interface {
	// Pair bonds a male and a female. Both must be breeding-status and
	// unpaired; the two rows are updated atomically.
	Pair(ctx context.Context, maleID, femaleID string, actorUserID string) (*PairingResult, error)

	// Unpair dissolves the animal's bond; both sides revert to breeding.
	Unpair(ctx context.Context, animalID string, actorUserID string) error

	// EligibleMates lists all unpaired breeding females for the given male.
	EligibleMates(ctx context.Context, maleID string) ([]domain.Animal, error)

	// GetMate returns the animal's current partner or nil when unpaired.
	GetMate(ctx context.Context, animalID string) (*domain.Animal, error)
}
