package repositories

import (
	"context"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// ListIncubationFilter narrows incubation record listings.
type ListIncubationFilter struct {
	Status        domain.IncubationStatus
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	ParentID      string
	Limit         int
	Offset        int
}

// IncubationRepository persists clutch records. Opening and closing a record
// also transitions both parents, so those methods run a single transaction
// combining the record write with two guarded animal-status updates.
type IncubationRepository interface {
	// SaveIncubationRecord inserts the record and moves both parents from
	// StatusPaired to StatusIncubating. A parent no longer paired surfaces as
	// apperrors.ErrConflict and nothing is written.
	SaveIncubationRecord(ctx context.Context, record domain.IncubationRecord) error

	FindIncubationRecordByID(ctx context.Context, recordID string) (*domain.IncubationRecord, error)

	ListIncubationRecords(ctx context.Context, filter ListIncubationFilter) ([]domain.IncubationRecord, int64, error)

	// UpdateIncubationRecord persists egg count, expected hatch date and notes
	// for a record that is still in progress.
	UpdateIncubationRecord(ctx context.Context, record domain.IncubationRecord) error

	// CloseIncubationRecord stamps the final status and hatched count and, in
	// the same transaction, reverts each parent still in StatusIncubating to
	// StatusPaired. A parent that was unpaired mid-clutch (already reverted to
	// StatusBreeding) or deleted is skipped; closing never fails on it.
	CloseIncubationRecord(ctx context.Context, record domain.IncubationRecord) error
}
