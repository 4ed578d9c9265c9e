package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/models"
	"github.com/featherworks/aviary_backend/internal/utils/mapping"
)

const followUpColumns = `
	follow_up_id, animal_id, follow_up_date, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxFollowUpRepository struct {
	pool *pgxpool.Pool
}

// newPgxFollowUpRepository creates a new repository for follow-up entries.
func newPgxFollowUpRepository(pool *pgxpool.Pool) portsrepo.FollowUpRepository {
	return &PgxFollowUpRepository{pool: pool}
}

// Ensure PgxFollowUpRepository implements portsrepo.FollowUpRepository
var _ portsrepo.FollowUpRepository = (*PgxFollowUpRepository)(nil)

func scanFollowUp(row rowScanner) (*models.FollowUpEntry, error) {
	var m models.FollowUpEntry
	err := row.Scan(
		&m.FollowUpID, &m.AnimalID, &m.FollowUpDate, &m.Status, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveFollowUp inserts a new follow-up entry.
func (r *PgxFollowUpRepository) SaveFollowUp(ctx context.Context, entry domain.FollowUpEntry) error {
	m := mapping.ToModelFollowUpEntry(entry)

	query := `
		INSERT INTO follow_ups (
			follow_up_id, animal_id, follow_up_date, status, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.FollowUpID, m.AnimalID, m.FollowUpDate, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save follow-up %s: %w", m.FollowUpID, err)
	}
	return nil
}

// FindFollowUpByID retrieves a non-deleted follow-up entry by its ID.
func (r *PgxFollowUpRepository) FindFollowUpByID(ctx context.Context, followUpID string) (*domain.FollowUpEntry, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE follow_up_id = $1 AND deleted_at IS NULL;`

	m, err := scanFollowUp(r.pool.QueryRow(ctx, query, followUpID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find follow-up %s: %w", followUpID, err)
	}

	d := mapping.ToDomainFollowUpEntry(*m)
	return &d, nil
}

// ListFollowUpsByAnimal returns an animal's follow-ups ordered by follow-up date.
func (r *PgxFollowUpRepository) ListFollowUpsByAnimal(ctx context.Context, animalID string) ([]domain.FollowUpEntry, error) {
	query := `SELECT ` + followUpColumns + `
		FROM follow_ups
		WHERE animal_id = $1 AND deleted_at IS NULL
		ORDER BY follow_up_date, follow_up_id;
	`
	rows, err := r.pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups for animal %s: %w", animalID, err)
	}
	defer rows.Close()

	var ms []models.FollowUpEntry
	for rows.Next() {
		m, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow-up row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow-up rows: %w", err)
	}
	return mapping.ToDomainFollowUpSlice(ms), nil
}

// UpdateFollowUp persists changes to an existing follow-up entry.
func (r *PgxFollowUpRepository) UpdateFollowUp(ctx context.Context, entry domain.FollowUpEntry) error {
	m := mapping.ToModelFollowUpEntry(entry)

	query := `
		UPDATE follow_ups SET
			follow_up_date = $2, status = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE follow_up_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.FollowUpID, m.FollowUpDate, m.Status, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update follow-up %s: %w", m.FollowUpID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFollowUp soft-deletes a follow-up entry.
func (r *PgxFollowUpRepository) DeleteFollowUp(ctx context.Context, followUpID string, deletedBy string, now time.Time) error {
	query := `
		UPDATE follow_ups SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE follow_up_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, followUpID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete follow-up %s: %w", followUpID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
