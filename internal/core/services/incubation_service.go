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

type incubationService struct {
	incubationRepo portsrepo.IncubationRepository
	animalRepo     portsrepo.AnimalReader
}

// NewIncubationService creates a new incubation service.
func NewIncubationService(incubationRepo portsrepo.IncubationRepository, animalRepo portsrepo.AnimalReader) portssvc.IncubationSvcFacade {
	return &incubationService{incubationRepo: incubationRepo, animalRepo: animalRepo}
}

var _ portssvc.IncubationSvcFacade = (*incubationService)(nil)

func (s *incubationService) StartIncubation(ctx context.Context, req dto.StartIncubationRequest, actorUserID string) (*domain.IncubationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	father, err := s.animalRepo.FindAnimalByID(ctx, req.FatherID)
	if err != nil {
		return nil, fmt.Errorf("father animal %s: %w", req.FatherID, err)
	}
	mother, err := s.animalRepo.FindAnimalByID(ctx, req.MotherID)
	if err != nil {
		return nil, fmt.Errorf("mother animal %s: %w", req.MotherID, err)
	}

	if father.Gender != domain.GenderMale {
		return nil, fmt.Errorf("%w: animal %s is not male", apperrors.ErrValidation, father.AnimalID)
	}
	if mother.Gender != domain.GenderFemale {
		return nil, fmt.Errorf("%w: animal %s is not female", apperrors.ErrValidation, mother.AnimalID)
	}
	if father.MateID == nil || *father.MateID != mother.AnimalID ||
		mother.MateID == nil || *mother.MateID != father.AnimalID {
		return nil, fmt.Errorf("%w: animals %s and %s are not paired with each other", apperrors.ErrValidation, father.AnimalID, mother.AnimalID)
	}
	for _, parent := range []*domain.Animal{father, mother} {
		if !domain.CanTransition(parent.Status, domain.OpBeginIncubation) {
			return nil, fmt.Errorf("%w: animal %s cannot start incubating from status %q", apperrors.ErrValidation, parent.AnimalID, parent.Status)
		}
	}

	now := time.Now().UTC()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	record := domain.IncubationRecord{
		RecordID:          uuid.NewString(),
		FatherID:          father.AnimalID,
		MotherID:          mother.AnimalID,
		StartDate:         startDate,
		ExpectedHatchDate: req.ExpectedHatchDate,
		Status:            domain.IncubationInProgress,
		EggCount:          req.EggCount,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.incubationRepo.SaveIncubationRecord(ctx, record); err != nil {
		logger.Error("Failed to start incubation",
			slog.String("father_id", father.AnimalID),
			slog.String("mother_id", mother.AnimalID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Incubation started", slog.String("record_id", record.RecordID))
	return &record, nil
}

func (s *incubationService) GetIncubation(ctx context.Context, recordID string) (*domain.IncubationRecord, error) {
	return s.incubationRepo.FindIncubationRecordByID(ctx, recordID)
}

func (s *incubationService) ListIncubations(ctx context.Context, filter portsrepo.ListIncubationFilter) ([]domain.IncubationRecord, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.incubationRepo.ListIncubationRecords(ctx, filter)
}

func (s *incubationService) UpdateIncubation(ctx context.Context, recordID string, req dto.UpdateIncubationRequest, actorUserID string) (*domain.IncubationRecord, error) {
	record, err := s.incubationRepo.FindIncubationRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.IncubationInProgress {
		return nil, fmt.Errorf("%w: incubation record %s is already closed", apperrors.ErrValidation, recordID)
	}

	if req.ExpectedHatchDate != nil {
		record.ExpectedHatchDate = req.ExpectedHatchDate
	}
	if req.EggCount != nil {
		record.EggCount = *req.EggCount
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = actorUserID

	if err := s.incubationRepo.UpdateIncubationRecord(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *incubationService) CompleteIncubation(ctx context.Context, recordID string, hatchedCount int, actorUserID string) (*domain.IncubationRecord, error) {
	return s.closeIncubation(ctx, recordID, domain.IncubationHatched, hatchedCount, nil, actorUserID)
}

func (s *incubationService) FailIncubation(ctx context.Context, recordID string, notes *string, actorUserID string) (*domain.IncubationRecord, error) {
	return s.closeIncubation(ctx, recordID, domain.IncubationFailed, 0, notes, actorUserID)
}

func (s *incubationService) closeIncubation(ctx context.Context, recordID string, outcome domain.IncubationStatus, hatchedCount int, notes *string, actorUserID string) (*domain.IncubationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.incubationRepo.FindIncubationRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.IncubationInProgress {
		return nil, fmt.Errorf("%w: incubation record %s is already closed", apperrors.ErrValidation, recordID)
	}
	if hatchedCount > record.EggCount && record.EggCount > 0 {
		return nil, fmt.Errorf("%w: hatched count %d exceeds egg count %d", apperrors.ErrValidation, hatchedCount, record.EggCount)
	}

	record.Status = outcome
	record.HatchedCount = hatchedCount
	if notes != nil {
		record.Notes = *notes
	}
	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = actorUserID

	if err := s.incubationRepo.CloseIncubationRecord(ctx, *record); err != nil {
		logger.Error("Failed to close incubation", slog.String("record_id", recordID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Incubation closed", slog.String("record_id", recordID), slog.String("outcome", string(outcome)))
	return record, nil
}
