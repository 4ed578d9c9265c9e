package repositories

import (
	"context"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ListAnimalsFilter narrows ListAnimals results. Zero values mean "no filter".
type ListAnimalsFilter struct {
	Species string
	Gender  domain.Gender
	Status  domain.AnimalStatus
	// Keyword matches species or ring number as a substring.
	Keyword string
	Limit   int
	Offset  int
}

// OpenSalesFilter narrows the listing of animals with an open sale cycle.
type OpenSalesFilter struct {
	// Keyword matches buyer name or ring number as a substring.
	Keyword  string
	Species  string
	SoldFrom *time.Time
	SoldTo   *time.Time
	Limit    int
	Offset   int
}

// AnimalReader defines read operations for animal data
type AnimalReader interface {
	// FindAnimalByID retrieves an animal by its unique identifier.
	FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error)

	// ListAnimals retrieves a filtered page of animals plus the unpaged total.
	ListAnimals(ctx context.Context, filter ListAnimalsFilter) ([]domain.Animal, int64, error)

	// RingNumberExists reports whether any non-deleted animal other than
	// excludeAnimalID carries the given ring number.
	RingNumberExists(ctx context.Context, ringNumber string, excludeAnimalID string) (bool, error)

	// FindEligibleMates returns all female, breeding, unpaired animals
	// excluding the given id.
	FindEligibleMates(ctx context.Context, excludeAnimalID string) ([]domain.Animal, error)

	// ListOpenSales retrieves sold animals (open sale cycles) plus the total.
	ListOpenSales(ctx context.Context, filter OpenSalesFilter) ([]domain.Animal, int64, error)
}

// AnimalWriter defines write operations for animal data
type AnimalWriter interface {
	// SaveAnimal inserts a new animal. A ring number collision surfaces as
	// apperrors.ErrDuplicate.
	SaveAnimal(ctx context.Context, animal domain.Animal) error

	// UpdateAnimal persists attribute changes (species, prices, notes, ring
	// number and the active-sale fields) for an existing animal. The update
	// only applies while the row still holds expectedStatus; a miss surfaces
	// as apperrors.ErrConflict.
	UpdateAnimal(ctx context.Context, animal domain.Animal, expectedStatus domain.AnimalStatus) error

	// UpdateAnimalStatus moves an animal from one status to another. The
	// from-status acts as an optimistic guard; a miss surfaces as
	// apperrors.ErrConflict.
	UpdateAnimalStatus(ctx context.Context, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error

	// MarkAnimalDeleted soft-deletes an animal.
	MarkAnimalDeleted(ctx context.Context, animalID string, updatedBy string, now time.Time) error
}

// PairingWriter defines the two-sided pairing mutations. Both methods update
// both animal rows in a single database transaction so the symmetric mate_id
// invariant can never be observed half-applied.
type PairingWriter interface {
	// PairAnimals sets mate_id and paired_at symmetrically and moves both
	// animals to StatusPaired. Each row update is guarded on
	// status=breeding AND mate_id IS NULL; losing that race surfaces as
	// apperrors.ErrConflict and neither row is modified.
	PairAnimals(ctx context.Context, maleID, femaleID string, pairedAt time.Time, updatedBy string) error

	// UnpairAnimals clears mate_id/paired_at on every given animal and
	// reverts any of them currently paired or incubating to StatusBreeding.
	// Missing ids are skipped (best-effort cleanup of dangling references).
	UnpairAnimals(ctx context.Context, animalIDs []string, updatedBy string, now time.Time) error
}

// AnimalTxOperations are animal-row operations other repositories compose
// into their own transactions.
type AnimalTxOperations interface {
	// FindAnimalByIDForUpdate locks and reads an animal row inside tx.
	FindAnimalByIDForUpdate(ctx context.Context, tx pgx.Tx, animalID string) (*domain.Animal, error)

	// ResetAnimalAfterReturnInTx clears the active-sale fields, resets the
	// follow-up status to pending, stamps returned_at/return_reason and moves
	// the animal back to StatusAvailable. Guarded on status=sold.
	ResetAnimalAfterReturnInTx(ctx context.Context, tx pgx.Tx, animalID string, returnedAt time.Time, reason string, updatedBy string) error

	// UpdateAnimalStatusInTx is UpdateAnimalStatus running inside tx.
	UpdateAnimalStatusInTx(ctx context.Context, tx pgx.Tx, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error
}

// AnimalRepositoryFacade combines all animal-related repository interfaces
type AnimalRepositoryFacade interface {
	AnimalReader
	AnimalWriter
	PairingWriter
	AnimalTxOperations
}

// AnimalRepositoryWithTx extends AnimalRepositoryFacade with transaction capabilities
type AnimalRepositoryWithTx interface {
	AnimalRepositoryFacade
	TransactionManager
}
