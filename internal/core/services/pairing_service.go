package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// pairingService enforces the symmetric mate relationship. All two-sided
// mutations run through the repository's single-transaction pairing methods,
// so the mate_id 2-cycle can never be observed half-applied.
type pairingService struct {
	animalRepo portsrepo.AnimalRepositoryWithTx
}

// NewPairingService creates a new pairing manager.
func NewPairingService(animalRepo portsrepo.AnimalRepositoryWithTx) portssvc.PairingSvcFacade {
	return &pairingService{animalRepo: animalRepo}
}

var _ portssvc.PairingSvcFacade = (*pairingService)(nil)

func (s *pairingService) Pair(ctx context.Context, maleID, femaleID string, actorUserID string) (*portssvc.PairingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if maleID == femaleID {
		return nil, fmt.Errorf("%w: an animal cannot be paired with itself", apperrors.ErrValidation)
	}

	male, err := s.animalRepo.FindAnimalByID(ctx, maleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: male animal %s", apperrors.ErrNotFound, maleID)
		}
		return nil, err
	}
	female, err := s.animalRepo.FindAnimalByID(ctx, femaleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: female animal %s", apperrors.ErrNotFound, femaleID)
		}
		return nil, err
	}

	if male.Gender != domain.GenderMale {
		return nil, fmt.Errorf("%w: animal %s is not male", apperrors.ErrValidation, maleID)
	}
	if female.Gender != domain.GenderFemale {
		return nil, fmt.Errorf("%w: animal %s is not female", apperrors.ErrValidation, femaleID)
	}
	if !domain.CanTransition(male.Status, domain.OpPair) {
		return nil, fmt.Errorf("%w: male must be a designated breeder, is %q", apperrors.ErrValidation, male.Status)
	}
	if !domain.CanTransition(female.Status, domain.OpPair) {
		return nil, fmt.Errorf("%w: female must be a designated breeder, is %q", apperrors.ErrValidation, female.Status)
	}
	if male.MateID != nil {
		return nil, fmt.Errorf("%w: male %s is already paired", apperrors.ErrValidation, maleID)
	}
	if female.MateID != nil {
		return nil, fmt.Errorf("%w: female %s is already paired", apperrors.ErrValidation, femaleID)
	}

	pairedAt := time.Now().UTC()
	if err := s.animalRepo.PairAnimals(ctx, maleID, femaleID, pairedAt, actorUserID); err != nil {
		logger.Warn("Pairing failed", slog.String("male_id", maleID), slog.String("female_id", femaleID), slog.String("error", err.Error()))
		return nil, err
	}

	male.MateID = &female.AnimalID
	female.MateID = &male.AnimalID
	male.PairedAt = &pairedAt
	female.PairedAt = &pairedAt
	male.Status = domain.StatusPaired
	female.Status = domain.StatusPaired

	logger.Info("Animals paired", slog.String("male_id", maleID), slog.String("female_id", femaleID))
	return &portssvc.PairingResult{Male: *male, Female: *female}, nil
}

func (s *pairingService) Unpair(ctx context.Context, animalID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return err
	}
	if animal.MateID == nil {
		return fmt.Errorf("%w: animal %s is not paired", apperrors.ErrValidation, animalID)
	}

	// The mate row is cleared too when it still exists; a dangling reference
	// only clears the requesting side.
	ids := []string{animalID, *animal.MateID}
	if err := s.animalRepo.UnpairAnimals(ctx, ids, actorUserID, time.Now().UTC()); err != nil {
		logger.Error("Unpairing failed", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Animals unpaired", slog.String("animal_id", animalID), slog.String("mate_id", *animal.MateID))
	return nil
}

func (s *pairingService) EligibleMates(ctx context.Context, maleID string) ([]domain.Animal, error) {
	male, err := s.animalRepo.FindAnimalByID(ctx, maleID)
	if err != nil {
		return nil, err
	}
	if male.Gender != domain.GenderMale {
		return nil, fmt.Errorf("%w: eligible mates can only be listed for a male animal", apperrors.ErrValidation)
	}
	return s.animalRepo.FindEligibleMates(ctx, maleID)
}

func (s *pairingService) GetMate(ctx context.Context, animalID string) (*domain.Animal, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if animal.MateID == nil {
		return nil, nil
	}
	mate, err := s.animalRepo.FindAnimalByID(ctx, *animal.MateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Dangling reference; treat as unpaired for display purposes.
			return nil, nil
		}
		return nil, err
	}
	return mate, nil
}
