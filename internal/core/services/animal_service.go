package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// animalService owns animal identity, attributes and the registry-side status
// changes (the breeder designation). Pairing, incubation, sale and return
// statuses are owned by their own services.
type animalService struct {
	animalRepo portsrepo.AnimalRepositoryWithTx
}

// NewAnimalService creates a new animal registry service.
func NewAnimalService(animalRepo portsrepo.AnimalRepositoryWithTx) portssvc.AnimalSvcFacade {
	return &animalService{animalRepo: animalRepo}
}

var _ portssvc.AnimalSvcFacade = (*animalService)(nil)

// validatePriceRange rejects an inverted min/max price pair.
func validatePriceRange(a *domain.Animal) error {
	if a.MinPrice != nil && a.MaxPrice != nil && a.MinPrice.GreaterThan(*a.MaxPrice) {
		return fmt.Errorf("%w: minimum price cannot exceed maximum price", apperrors.ErrValidation)
	}
	return nil
}

// defaultPrice fills the listed price from the range when no explicit price is
// set, preferring the upper bound.
func defaultPrice(a *domain.Animal) {
	if a.Price != nil {
		return
	}
	if a.MaxPrice != nil {
		p := *a.MaxPrice
		a.Price = &p
		return
	}
	if a.MinPrice != nil {
		p := *a.MinPrice
		a.Price = &p
	}
}

func (s *animalService) CreateAnimal(ctx context.Context, req dto.CreateAnimalRequest, creatorUserID string) (*domain.Animal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	animal := domain.Animal{
		AnimalID:       uuid.NewString(),
		Species:        req.Species,
		Gender:         req.Gender,
		BirthDate:      req.BirthDate,
		RingNumber:     req.RingNumber,
		Price:          req.Price,
		MinPrice:       req.MinPrice,
		MaxPrice:       req.MaxPrice,
		HealthNotes:    req.HealthNotes,
		Status:         domain.StatusAvailable,
		FollowUpStatus: domain.FollowUpPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := validatePriceRange(&animal); err != nil {
		return nil, err
	}
	defaultPrice(&animal)

	if err := s.animalRepo.SaveAnimal(ctx, animal); err != nil {
		logger.Error("Failed to save animal", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Animal registered", slog.String("animal_id", animal.AnimalID), slog.String("species", animal.Species))
	return &animal, nil
}

func (s *animalService) GetAnimal(ctx context.Context, animalID string) (*domain.Animal, error) {
	return s.animalRepo.FindAnimalByID(ctx, animalID)
}

func (s *animalService) ListAnimals(ctx context.Context, filter portsrepo.ListAnimalsFilter) ([]domain.Animal, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.animalRepo.ListAnimals(ctx, filter)
}

func (s *animalService) RingNumberExists(ctx context.Context, ringNumber string) (bool, error) {
	return s.animalRepo.RingNumberExists(ctx, ringNumber, "")
}

func (s *animalService) UpdateAnimal(ctx context.Context, animalID string, req dto.UpdateAnimalRequest, updaterUserID string) (*domain.Animal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	if req.Species != nil {
		animal.Species = *req.Species
	}
	if req.BirthDate != nil {
		animal.BirthDate = req.BirthDate
	}
	if req.RingNumber != nil {
		taken, err := s.animalRepo.RingNumberExists(ctx, *req.RingNumber, animalID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: ring number %q is already assigned", apperrors.ErrDuplicate, *req.RingNumber)
		}
		animal.RingNumber = req.RingNumber
	}
	if req.MinPrice != nil {
		animal.MinPrice = req.MinPrice
	}
	if req.MaxPrice != nil {
		animal.MaxPrice = req.MaxPrice
	}
	if req.HealthNotes != nil {
		animal.HealthNotes = *req.HealthNotes
	}

	if err := validatePriceRange(animal); err != nil {
		return nil, err
	}

	if req.Price != nil {
		animal.Price = req.Price
	} else if req.MinPrice != nil || req.MaxPrice != nil {
		// Re-derive the listed price from the adjusted range.
		animal.Price = nil
		defaultPrice(animal)
	}

	animal.LastUpdatedAt = time.Now().UTC()
	animal.LastUpdatedBy = updaterUserID

	if err := s.animalRepo.UpdateAnimal(ctx, *animal, animal.Status); err != nil {
		logger.Error("Failed to update animal", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}

	return animal, nil
}

func (s *animalService) UpdateAnimalStatus(ctx context.Context, animalID string, target domain.AnimalStatus, updaterUserID string) (*domain.Animal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	var op domain.AnimalOperation
	switch target {
	case domain.StatusBreeding:
		op = domain.OpMarkBreeding
	case domain.StatusAvailable:
		op = domain.OpMarkAvailable
	default:
		return nil, fmt.Errorf("%w: status %q is not settable directly; it is owned by a lifecycle operation", apperrors.ErrValidation, target)
	}

	next, err := domain.Transition(animal.Status, op)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.animalRepo.UpdateAnimalStatus(ctx, animalID, animal.Status, next, updaterUserID, now); err != nil {
		logger.Error("Failed to update animal status", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}

	animal.Status = next
	animal.LastUpdatedAt = now
	animal.LastUpdatedBy = updaterUserID
	logger.Info("Animal status updated", slog.String("animal_id", animalID), slog.String("status", string(next)))
	return animal, nil
}

func (s *animalService) DeleteAnimal(ctx context.Context, animalID string, deleterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return err
	}

	switch animal.Status {
	case domain.StatusPaired, domain.StatusIncubating:
		return fmt.Errorf("%w: unpair the animal before deleting it", apperrors.ErrValidation)
	case domain.StatusSold:
		return fmt.Errorf("%w: record a return before deleting a sold animal", apperrors.ErrValidation)
	}

	if err := s.animalRepo.MarkAnimalDeleted(ctx, animalID, deleterUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to delete animal", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Animal deleted", slog.String("animal_id", animalID))
	return nil
}
