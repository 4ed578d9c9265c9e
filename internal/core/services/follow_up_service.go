package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

type followUpService struct {
	followUpRepo portsrepo.FollowUpRepository
	animalRepo   portsrepo.AnimalReader
}

// NewFollowUpService creates a new follow-up service.
func NewFollowUpService(followUpRepo portsrepo.FollowUpRepository, animalRepo portsrepo.AnimalReader) portssvc.FollowUpSvcFacade {
	return &followUpService{followUpRepo: followUpRepo, animalRepo: animalRepo}
}

var _ portssvc.FollowUpSvcFacade = (*followUpService)(nil)

func (s *followUpService) CreateFollowUp(ctx context.Context, animalID string, req dto.CreateFollowUpRequest, creatorUserID string) (*domain.FollowUpEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	followUpDate := now
	if req.FollowUpDate != nil {
		followUpDate = *req.FollowUpDate
	}

	entry := domain.FollowUpEntry{
		FollowUpID:   uuid.NewString(),
		AnimalID:     animalID,
		FollowUpDate: followUpDate,
		Status:       req.Status,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.followUpRepo.SaveFollowUp(ctx, entry); err != nil {
		logger.Error("Failed to save follow-up", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}
	return &entry, nil
}

func (s *followUpService) ListFollowUps(ctx context.Context, animalID string) ([]domain.FollowUpEntry, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.followUpRepo.ListFollowUpsByAnimal(ctx, animalID)
}

func (s *followUpService) UpdateFollowUp(ctx context.Context, followUpID string, req dto.UpdateFollowUpRequest, updaterUserID string) (*domain.FollowUpEntry, error) {
	entry, err := s.followUpRepo.FindFollowUpByID(ctx, followUpID)
	if err != nil {
		return nil, err
	}

	if req.FollowUpDate != nil {
		entry.FollowUpDate = *req.FollowUpDate
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterUserID

	if err := s.followUpRepo.UpdateFollowUp(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *followUpService) DeleteFollowUp(ctx context.Context, followUpID string, deleterUserID string) error {
	if _, err := s.followUpRepo.FindFollowUpByID(ctx, followUpID); err != nil {
		return err
	}
	return s.followUpRepo.DeleteFollowUp(ctx, followUpID, deleterUserID, time.Now().UTC())
}
