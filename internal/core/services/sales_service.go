package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// salesService owns the sale/return ledger. A sale writes only the animal's
// own active-sale fields; the append-only history gains an entry exclusively
// through the return transaction.
type salesService struct {
	animalRepo      portsrepo.AnimalRepositoryWithTx
	saleHistoryRepo portsrepo.SaleHistoryRepositoryWithTx
}

// NewSalesService creates a new sale/return ledger service.
func NewSalesService(animalRepo portsrepo.AnimalRepositoryWithTx, saleHistoryRepo portsrepo.SaleHistoryRepositoryWithTx) portssvc.SalesSvcFacade {
	return &salesService{animalRepo: animalRepo, saleHistoryRepo: saleHistoryRepo}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) RecordSale(ctx context.Context, animalID string, req dto.RecordSaleRequest, actorUserID string) (*domain.Animal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	// Selling an already-sold animal would silently overwrite the open cycle
	// and lose it from the ledger, so it gets a dedicated rejection.
	if animal.Status == domain.StatusSold {
		return nil, fmt.Errorf("%w: animal %s already has an open sale; record a return before selling again", apperrors.ErrValidation, animalID)
	}

	priorStatus := animal.Status
	next, err := domain.Transition(animal.Status, domain.OpSell)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	followUp := req.FollowUpStatus
	if followUp == "" {
		followUp = domain.FollowUpPending
	}

	animal.Seller = &req.Seller
	animal.BuyerName = &req.BuyerName
	animal.SalePrice = req.SalePrice
	if req.Contact != "" {
		animal.Contact = &req.Contact
	} else {
		animal.Contact = nil
	}
	animal.FollowUpStatus = followUp
	animal.SaleNotes = req.SaleNotes
	animal.SoldAt = &now
	animal.Status = next
	animal.LastUpdatedAt = now
	animal.LastUpdatedBy = actorUserID

	if err := s.animalRepo.UpdateAnimal(ctx, *animal, priorStatus); err != nil {
		logger.Error("Failed to record sale", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Sale recorded", slog.String("animal_id", animalID), slog.String("buyer", req.BuyerName))
	return animal, nil
}

func (s *salesService) RecordReturn(ctx context.Context, animalID string, reason string, actorUserID string) (*domain.SaleHistoryEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	if _, err := domain.Transition(animal.Status, domain.OpReturn); err != nil {
		return nil, err
	}
	if !animal.HasOpenSale() {
		return nil, fmt.Errorf("%w: animal %s has no open sale to return", apperrors.ErrValidation, animalID)
	}

	entry, err := s.saleHistoryRepo.ArchiveReturn(ctx, animalID, reason, time.Now().UTC(), actorUserID)
	if err != nil {
		logger.Error("Failed to record return", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Return recorded", slog.String("animal_id", animalID), slog.String("entry_id", entry.EntryID))
	return entry, nil
}

func (s *salesService) ListSaleHistory(ctx context.Context, animalID string) ([]domain.SaleHistoryEntry, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.saleHistoryRepo.ListSaleHistoryByAnimal(ctx, animalID)
}

func (s *salesService) ListAllSaleHistory(ctx context.Context, filter portsrepo.SaleHistoryFilter) ([]domain.SaleHistoryEntry, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.saleHistoryRepo.ListSaleHistory(ctx, filter)
}

func (s *salesService) ListOpenSales(ctx context.Context, filter portsrepo.OpenSalesFilter) ([]domain.Animal, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.animalRepo.ListOpenSales(ctx, filter)
}
