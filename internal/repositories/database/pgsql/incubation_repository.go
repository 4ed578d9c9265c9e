package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/models"
	"github.com/featherworks/aviary_backend/internal/utils/mapping"
)

const incubationColumns = `
	record_id, father_id, mother_id, start_date, expected_hatch_date,
	status, egg_count, hatched_count, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxIncubationRepository persists clutch records. It composes the animal
// repository's in-transaction status updates so opening or closing a record
// moves both parents atomically with the record write.
type PgxIncubationRepository struct {
	BaseRepository
	animalRepo portsrepo.AnimalRepositoryFacade
}

// newPgxIncubationRepository creates a new repository for incubation records.
func newPgxIncubationRepository(pool *pgxpool.Pool, animalRepo portsrepo.AnimalRepositoryFacade) portsrepo.IncubationRepository {
	return &PgxIncubationRepository{
		BaseRepository: BaseRepository{Pool: pool},
		animalRepo:     animalRepo,
	}
}

// Ensure PgxIncubationRepository implements portsrepo.IncubationRepository
var _ portsrepo.IncubationRepository = (*PgxIncubationRepository)(nil)

func scanIncubationRecord(row rowScanner) (*models.IncubationRecord, error) {
	var m models.IncubationRecord
	err := row.Scan(
		&m.RecordID, &m.FatherID, &m.MotherID, &m.StartDate, &m.ExpectedHatchDate,
		&m.Status, &m.EggCount, &m.HatchedCount, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveIncubationRecord inserts the record and moves both parents from paired
// to incubating, all in one transaction.
func (r *PgxIncubationRepository) SaveIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelIncubationRecord(record)
	query := `
		INSERT INTO incubation_records (
			record_id, father_id, mother_id, start_date, expected_hatch_date,
			status, egg_count, hatched_count, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.RecordID, m.FatherID, m.MotherID, m.StartDate, m.ExpectedHatchDate,
		m.Status, m.EggCount, m.HatchedCount, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert incubation record %s: %w", m.RecordID, err)
	}

	for _, parentID := range []string{record.FatherID, record.MotherID} {
		if err := r.animalRepo.UpdateAnimalStatusInTx(ctx, tx, parentID,
			domain.StatusPaired, domain.StatusIncubating,
			record.CreatedBy, record.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindIncubationRecordByID retrieves a record by its ID.
func (r *PgxIncubationRepository) FindIncubationRecordByID(ctx context.Context, recordID string) (*domain.IncubationRecord, error) {
	query := `SELECT ` + incubationColumns + ` FROM incubation_records WHERE record_id = $1;`

	m, err := scanIncubationRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incubation record %s: %w", recordID, err)
	}

	d := mapping.ToDomainIncubationRecord(*m)
	return &d, nil
}

// ListIncubationRecords retrieves a filtered page of records plus the total.
func (r *PgxIncubationRepository) ListIncubationRecords(ctx context.Context, filter portsrepo.ListIncubationFilter) ([]domain.IncubationRecord, int64, error) {
	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(filter.Status))
		argPos++
	}
	if filter.ParentID != "" {
		where += fmt.Sprintf(" AND (father_id = $%d OR mother_id = $%d)", argPos, argPos)
		args = append(args, filter.ParentID)
		argPos++
	}
	if filter.StartDateFrom != nil {
		where += fmt.Sprintf(" AND start_date >= $%d", argPos)
		args = append(args, *filter.StartDateFrom)
		argPos++
	}
	if filter.StartDateTo != nil {
		where += fmt.Sprintf(" AND start_date <= $%d", argPos)
		args = append(args, *filter.StartDateTo)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM incubation_records " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incubation records: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM incubation_records %s ORDER BY start_date DESC, record_id LIMIT $%d OFFSET $%d",
		incubationColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incubation records: %w", err)
	}
	defer rows.Close()

	var ms []models.IncubationRecord
	for rows.Next() {
		m, err := scanIncubationRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan incubation row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating incubation rows: %w", err)
	}
	return mapping.ToDomainIncubationSlice(ms), total, nil
}

// UpdateIncubationRecord persists egg count, expected hatch date and notes
// while the record is still in progress.
func (r *PgxIncubationRepository) UpdateIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	m := mapping.ToModelIncubationRecord(record)

	query := `
		UPDATE incubation_records SET
			expected_hatch_date = $2, egg_count = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE record_id = $1 AND status = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.ExpectedHatchDate, m.EggCount, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		string(domain.IncubationInProgress),
	)
	if err != nil {
		return fmt.Errorf("failed to update incubation record %s: %w", m.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: incubation record %s is not in progress", apperrors.ErrConflict, m.RecordID)
	}
	return nil
}

// CloseIncubationRecord stamps the final status and, in the same transaction,
// reverts each parent still incubating to paired. A parent that was unpaired
// mid-clutch already sits on breeding and is left untouched.
func (r *PgxIncubationRepository) CloseIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelIncubationRecord(record)
	query := `
		UPDATE incubation_records SET
			status = $2, hatched_count = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE record_id = $1 AND status = $7;
	`
	tag, err := tx.Exec(ctx, query,
		m.RecordID, m.Status, m.HatchedCount, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		string(domain.IncubationInProgress),
	)
	if err != nil {
		return fmt.Errorf("failed to close incubation record %s: %w", m.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: incubation record %s is not in progress", apperrors.ErrConflict, m.RecordID)
	}

	for _, parentID := range []string{record.FatherID, record.MotherID} {
		parent, err := r.animalRepo.FindAnimalByIDForUpdate(ctx, tx, parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return err
		}
		// A parent unpaired mid-clutch already reverted to breeding; only a
		// parent still incubating moves back to paired. Closing the record
		// must not strand it on a guard that can no longer match.
		if parent.Status != domain.StatusIncubating {
			continue
		}
		if err := r.animalRepo.UpdateAnimalStatusInTx(ctx, tx, parentID,
			domain.StatusIncubating, domain.StatusPaired,
			record.LastUpdatedBy, record.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
