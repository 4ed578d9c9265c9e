package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/models"
	"github.com/featherworks/aviary_backend/internal/utils/mapping"
)

const saleHistoryColumns = `
	entry_id, animal_id, seller, buyer_name, sale_price, contact,
	follow_up_status, sale_notes, sale_date, return_date, return_reason,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxSaleHistoryRepository owns the append-only ledger. It composes the animal
// repository's in-transaction operations so a return archives the entry and
// resets the animal atomically.
type PgxSaleHistoryRepository struct {
	BaseRepository
	animalRepo portsrepo.AnimalRepositoryFacade
}

// newPgxSaleHistoryRepository creates a new repository for the sale ledger.
func newPgxSaleHistoryRepository(pool *pgxpool.Pool, animalRepo portsrepo.AnimalRepositoryFacade) portsrepo.SaleHistoryRepositoryWithTx {
	return &PgxSaleHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		animalRepo:     animalRepo,
	}
}

// Ensure PgxSaleHistoryRepository implements portsrepo.SaleHistoryRepositoryWithTx
var _ portsrepo.SaleHistoryRepositoryWithTx = (*PgxSaleHistoryRepository)(nil)

func scanSaleHistoryEntry(row rowScanner) (*models.SaleHistoryEntry, error) {
	var m models.SaleHistoryEntry
	err := row.Scan(
		&m.EntryID, &m.AnimalID, &m.Seller, &m.BuyerName, &m.SalePrice, &m.Contact,
		&m.FollowUpStatus, &m.SaleNotes, &m.SaleDate, &m.ReturnDate, &m.ReturnReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectSaleHistoryEntries(rows pgx.Rows) ([]domain.SaleHistoryEntry, error) {
	var ms []models.SaleHistoryEntry
	for rows.Next() {
		m, err := scanSaleHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale history row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale history rows: %w", err)
	}
	return mapping.ToDomainSaleHistorySlice(ms), nil
}

// ArchiveReturn runs the whole return in one transaction: lock the animal,
// verify the open sale survived until the lock, append the ledger entry, reset
// the animal row.
func (r *PgxSaleHistoryRepository) ArchiveReturn(ctx context.Context, animalID string, reason string, returnedAt time.Time, updatedBy string) (*domain.SaleHistoryEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	animal, err := r.animalRepo.FindAnimalByIDForUpdate(ctx, tx, animalID)
	if err != nil {
		return nil, err
	}
	if animal.Status != domain.StatusSold || !animal.HasOpenSale() {
		return nil, fmt.Errorf("%w: animal %s no longer has an open sale", apperrors.ErrConflict, animalID)
	}

	contact := ""
	if animal.Contact != nil {
		contact = *animal.Contact
	}
	entry := domain.SaleHistoryEntry{
		EntryID:        uuid.NewString(),
		AnimalID:       animalID,
		Seller:         *animal.Seller,
		BuyerName:      derefOr(animal.BuyerName, ""),
		SalePrice:      animal.SalePrice,
		Contact:        contact,
		FollowUpStatus: animal.FollowUpStatus,
		SaleNotes:      animal.SaleNotes,
		SaleDate:       *animal.SoldAt,
		ReturnDate:     &returnedAt,
		ReturnReason:   &reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     returnedAt,
			CreatedBy:     updatedBy,
			LastUpdatedAt: returnedAt,
			LastUpdatedBy: updatedBy,
		},
	}

	m := mapping.ToModelSaleHistoryEntry(entry)
	insertQuery := `
		INSERT INTO sale_history (
			entry_id, animal_id, seller, buyer_name, sale_price, contact,
			follow_up_status, sale_notes, sale_date, return_date, return_reason,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.EntryID, m.AnimalID, m.Seller, m.BuyerName, m.SalePrice, m.Contact,
		m.FollowUpStatus, m.SaleNotes, m.SaleDate, m.ReturnDate, m.ReturnReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale history entry for animal %s: %w", animalID, err)
	}

	if err := r.animalRepo.ResetAnimalAfterReturnInTx(ctx, tx, animalID, returnedAt, reason, updatedBy); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

// ListSaleHistoryByAnimal returns an animal's archived cycles, newest sale first.
func (r *PgxSaleHistoryRepository) ListSaleHistoryByAnimal(ctx context.Context, animalID string) ([]domain.SaleHistoryEntry, error) {
	query := `SELECT ` + saleHistoryColumns + ` FROM sale_history WHERE animal_id = $1 ORDER BY sale_date DESC, entry_id;`

	rows, err := r.Pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale history for animal %s: %w", animalID, err)
	}
	defer rows.Close()

	return collectSaleHistoryEntries(rows)
}

// ListSaleHistory returns a filtered page of archived cycles plus the total.
func (r *PgxSaleHistoryRepository) ListSaleHistory(ctx context.Context, filter portsrepo.SaleHistoryFilter) ([]domain.SaleHistoryEntry, int64, error) {
	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.Keyword != "" {
		where += fmt.Sprintf(" AND buyer_name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	if filter.HasReturn != nil {
		if *filter.HasReturn {
			where += " AND return_date IS NOT NULL"
		} else {
			where += " AND return_date IS NULL"
		}
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM sale_history " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sale history: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM sale_history %s ORDER BY sale_date DESC, entry_id LIMIT $%d OFFSET $%d",
		saleHistoryColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sale history: %w", err)
	}
	defer rows.Close()

	entries, err := collectSaleHistoryEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// CountSaleHistoryByAnimal returns the number of completed cycles for one animal.
func (r *PgxSaleHistoryRepository) CountSaleHistoryByAnimal(ctx context.Context, animalID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sale_history WHERE animal_id = $1`, animalID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sale history for animal %s: %w", animalID, err)
	}
	return count, nil
}
