package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/models"
	"github.com/featherworks/aviary_backend/internal/utils/mapping"
)

const pgUniqueViolation = "23505"

// animalColumns is the canonical select list for the animals table. Every scan
// goes through scanAnimal so column order is defined in exactly one place.
const animalColumns = `
	animal_id, species, gender, birth_date, ring_number,
	price, min_price, max_price, health_notes, status,
	mate_id, paired_at,
	seller, buyer_name, sale_price, contact, follow_up_status, sale_notes, sold_at,
	returned_at, return_reason,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxAnimalRepository struct {
	BaseRepository
}

// newPgxAnimalRepository creates a new repository for animal data.
func newPgxAnimalRepository(pool *pgxpool.Pool) portsrepo.AnimalRepositoryWithTx {
	return &PgxAnimalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAnimalRepository implements portsrepo.AnimalRepositoryWithTx
var _ portsrepo.AnimalRepositoryWithTx = (*PgxAnimalRepository)(nil)

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (*models.Animal, error) {
	var m models.Animal
	err := row.Scan(
		&m.AnimalID, &m.Species, &m.Gender, &m.BirthDate, &m.RingNumber,
		&m.Price, &m.MinPrice, &m.MaxPrice, &m.HealthNotes, &m.Status,
		&m.MateID, &m.PairedAt,
		&m.Seller, &m.BuyerName, &m.SalePrice, &m.Contact, &m.FollowUpStatus, &m.SaleNotes, &m.SoldAt,
		&m.ReturnedAt, &m.ReturnReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAnimal inserts a new animal.
func (r *PgxAnimalRepository) SaveAnimal(ctx context.Context, animal domain.Animal) error {
	m := mapping.ToModelAnimal(animal)

	query := `
		INSERT INTO animals (
			animal_id, species, gender, birth_date, ring_number,
			price, min_price, max_price, health_notes, status,
			mate_id, paired_at,
			seller, buyer_name, sale_price, contact, follow_up_status, sale_notes, sold_at,
			returned_at, return_reason,
			created_at, created_by, last_updated_at, last_updated_by, deleted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AnimalID, m.Species, m.Gender, m.BirthDate, m.RingNumber,
		m.Price, m.MinPrice, m.MaxPrice, m.HealthNotes, m.Status,
		m.MateID, m.PairedAt,
		m.Seller, m.BuyerName, m.SalePrice, m.Contact, m.FollowUpStatus, m.SaleNotes, m.SoldAt,
		m.ReturnedAt, m.ReturnReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: animal with this ring number already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save animal %s: %w", m.AnimalID, err)
	}
	return nil
}

// FindAnimalByID retrieves a non-deleted animal by its ID.
func (r *PgxAnimalRepository) FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE animal_id = $1 AND deleted_at IS NULL;`

	m, err := scanAnimal(r.Pool.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find animal by ID %s: %w", animalID, err)
	}

	d := mapping.ToDomainAnimal(*m)
	return &d, nil
}

// ListAnimals retrieves a filtered page of animals plus the unpaged total.
func (r *PgxAnimalRepository) ListAnimals(ctx context.Context, filter portsrepo.ListAnimalsFilter) ([]domain.Animal, int64, error) {
	where := "WHERE deleted_at IS NULL"
	args := []any{}
	argPos := 1

	if filter.Species != "" {
		where += fmt.Sprintf(" AND species = $%d", argPos)
		args = append(args, filter.Species)
		argPos++
	}
	if filter.Gender != "" {
		where += fmt.Sprintf(" AND gender = $%d", argPos)
		args = append(args, string(filter.Gender))
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(filter.Status))
		argPos++
	}
	if filter.Keyword != "" {
		where += fmt.Sprintf(" AND (species ILIKE $%d OR ring_number ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM animals " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count animals: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM animals %s ORDER BY created_at DESC, animal_id LIMIT $%d OFFSET $%d",
		animalColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close()

	animals, err := collectAnimals(rows)
	if err != nil {
		return nil, 0, err
	}
	return animals, total, nil
}

func collectAnimals(rows pgx.Rows) ([]domain.Animal, error) {
	var ms []models.Animal
	for rows.Next() {
		m, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating animal rows: %w", err)
	}
	return mapping.ToDomainAnimalSlice(ms), nil
}

// RingNumberExists reports whether another non-deleted animal carries the ring number.
func (r *PgxAnimalRepository) RingNumberExists(ctx context.Context, ringNumber string, excludeAnimalID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM animals
			WHERE ring_number = $1 AND animal_id <> $2 AND deleted_at IS NULL
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, ringNumber, excludeAnimalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ring number %s: %w", ringNumber, err)
	}
	return exists, nil
}

// FindEligibleMates returns female breeding animals without a mate.
func (r *PgxAnimalRepository) FindEligibleMates(ctx context.Context, excludeAnimalID string) ([]domain.Animal, error) {
	query := `SELECT ` + animalColumns + `
		FROM animals
		WHERE gender = $1 AND status = $2 AND mate_id IS NULL
			AND animal_id <> $3 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.GenderFemale), string(domain.StatusBreeding), excludeAnimalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible mates: %w", err)
	}
	defer rows.Close()

	return collectAnimals(rows)
}

// ListOpenSales retrieves sold animals (open sale cycles) plus the total.
func (r *PgxAnimalRepository) ListOpenSales(ctx context.Context, filter portsrepo.OpenSalesFilter) ([]domain.Animal, int64, error) {
	where := "WHERE status = $1 AND deleted_at IS NULL"
	args := []any{string(domain.StatusSold)}
	argPos := 2

	if filter.Keyword != "" {
		where += fmt.Sprintf(" AND (buyer_name ILIKE $%d OR ring_number ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	if filter.Species != "" {
		where += fmt.Sprintf(" AND species = $%d", argPos)
		args = append(args, filter.Species)
		argPos++
	}
	if filter.SoldFrom != nil {
		where += fmt.Sprintf(" AND sold_at >= $%d", argPos)
		args = append(args, *filter.SoldFrom)
		argPos++
	}
	if filter.SoldTo != nil {
		where += fmt.Sprintf(" AND sold_at <= $%d", argPos)
		args = append(args, *filter.SoldTo)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM animals " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count open sales: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM animals %s ORDER BY sold_at DESC, animal_id LIMIT $%d OFFSET $%d",
		animalColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list open sales: %w", err)
	}
	defer rows.Close()

	animals, err := collectAnimals(rows)
	if err != nil {
		return nil, 0, err
	}
	return animals, total, nil
}

// UpdateAnimal persists attribute changes, guarded on the expected status so a
// concurrent transition invalidates the write instead of clobbering it.
func (r *PgxAnimalRepository) UpdateAnimal(ctx context.Context, animal domain.Animal, expectedStatus domain.AnimalStatus) error {
	m := mapping.ToModelAnimal(animal)

	query := `
		UPDATE animals SET
			species = $2, gender = $3, birth_date = $4, ring_number = $5,
			price = $6, min_price = $7, max_price = $8, health_notes = $9, status = $10,
			seller = $11, buyer_name = $12, sale_price = $13, contact = $14,
			follow_up_status = $15, sale_notes = $16, sold_at = $17,
			returned_at = $18, return_reason = $19,
			last_updated_at = $20, last_updated_by = $21
		WHERE animal_id = $1 AND status = $22 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AnimalID,
		m.Species, m.Gender, m.BirthDate, m.RingNumber,
		m.Price, m.MinPrice, m.MaxPrice, m.HealthNotes, m.Status,
		m.Seller, m.BuyerName, m.SalePrice, m.Contact,
		m.FollowUpStatus, m.SaleNotes, m.SoldAt,
		m.ReturnedAt, m.ReturnReason,
		m.LastUpdatedAt, m.LastUpdatedBy,
		string(expectedStatus),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: animal with this ring number already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update animal %s: %w", m.AnimalID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, m.AnimalID, expectedStatus)
	}
	return nil
}

// UpdateAnimalStatus moves an animal between statuses with the from-status as guard.
func (r *PgxAnimalRepository) UpdateAnimalStatus(ctx context.Context, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE animals SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE animal_id = $1 AND status = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, animalID, string(from), string(to), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of animal %s: %w", animalID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, animalID, from)
	}
	return nil
}

// explainMiss distinguishes a vanished row from a lost status race after a
// guarded update affected zero rows.
func (r *PgxAnimalRepository) explainMiss(ctx context.Context, animalID string, expected domain.AnimalStatus) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM animals WHERE animal_id = $1 AND deleted_at IS NULL`, animalID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to re-read animal %s: %w", animalID, err)
	}
	return fmt.Errorf("%w: animal %s is in status %q, expected %q", apperrors.ErrConflict, animalID, status, expected)
}

// MarkAnimalDeleted soft-deletes an animal.
func (r *PgxAnimalRepository) MarkAnimalDeleted(ctx context.Context, animalID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE animals SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE animal_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, animalID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to delete animal %s: %w", animalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PairAnimals links two animals symmetrically inside one transaction. Each row
// is guarded on being a breeding, unpaired animal; if either guard misses the
// whole transaction rolls back.
func (r *PgxAnimalRepository) PairAnimals(ctx context.Context, maleID, femaleID string, pairedAt time.Time, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE animals SET mate_id = $2, paired_at = $3, status = $4, last_updated_at = $3, last_updated_by = $5
		WHERE animal_id = $1 AND status = $6 AND mate_id IS NULL AND deleted_at IS NULL;
	`
	// Update in id order so concurrent pairings touching the same rows cannot
	// deadlock on each other.
	pairs := [][2]string{{maleID, femaleID}, {femaleID, maleID}}
	if pairs[0][0] > pairs[1][0] {
		pairs[0], pairs[1] = pairs[1], pairs[0]
	}
	for _, p := range pairs {
		animalID, mateID := p[0], p[1]
		tag, err := tx.Exec(ctx, query,
			animalID, mateID, pairedAt, string(domain.StatusPaired), updatedBy, string(domain.StatusBreeding))
		if err != nil {
			return fmt.Errorf("failed to pair animal %s: %w", animalID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: animal %s is no longer an unpaired breeder", apperrors.ErrConflict, animalID)
		}
	}

	return r.Commit(ctx, tx)
}

// UnpairAnimals clears the mate link on every given animal in one transaction.
// Rows in paired or incubating revert to breeding; other statuses keep theirs.
// Ids that match no row are skipped so a dangling mate reference still unwinds.
func (r *PgxAnimalRepository) UnpairAnimals(ctx context.Context, animalIDs []string, updatedBy string, now time.Time) error {
	if len(animalIDs) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE animals SET
			mate_id = NULL,
			paired_at = NULL,
			status = CASE WHEN status IN ($3, $4) THEN $5 ELSE status END,
			last_updated_at = $1,
			last_updated_by = $2
		WHERE animal_id = ANY($6) AND deleted_at IS NULL;
	`
	_, err = tx.Exec(ctx, query,
		now, updatedBy,
		string(domain.StatusPaired), string(domain.StatusIncubating), string(domain.StatusBreeding),
		animalIDs)
	if err != nil {
		return fmt.Errorf("failed to unpair animals: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindAnimalByIDForUpdate locks and reads an animal row inside tx.
func (r *PgxAnimalRepository) FindAnimalByIDForUpdate(ctx context.Context, tx pgx.Tx, animalID string) (*domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE animal_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanAnimal(tx.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock animal %s: %w", animalID, err)
	}

	d := mapping.ToDomainAnimal(*m)
	return &d, nil
}

// ResetAnimalAfterReturnInTx clears the active-sale block and lands the animal
// back on available. Guarded on status=sold.
func (r *PgxAnimalRepository) ResetAnimalAfterReturnInTx(ctx context.Context, tx pgx.Tx, animalID string, returnedAt time.Time, reason string, updatedBy string) error {
	query := `
		UPDATE animals SET
			status = $2,
			seller = NULL, buyer_name = NULL, sale_price = NULL, contact = NULL,
			follow_up_status = $3, sale_notes = NULL, sold_at = NULL,
			returned_at = $4, return_reason = $5,
			last_updated_at = $4, last_updated_by = $6
		WHERE animal_id = $1 AND status = $7 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		animalID,
		string(domain.StatusAvailable), string(domain.FollowUpPending),
		returnedAt, reason, updatedBy,
		string(domain.StatusSold))
	if err != nil {
		return fmt.Errorf("failed to reset animal %s after return: %w", animalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: animal %s is no longer sold", apperrors.ErrConflict, animalID)
	}
	return nil
}

// UpdateAnimalStatusInTx is UpdateAnimalStatus running inside tx.
func (r *PgxAnimalRepository) UpdateAnimalStatusInTx(ctx context.Context, tx pgx.Tx, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE animals SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE animal_id = $1 AND status = $2 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, animalID, string(from), string(to), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of animal %s: %w", animalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: animal %s is not in status %q", apperrors.ErrConflict, animalID, from)
	}
	return nil
}
