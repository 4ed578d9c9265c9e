package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/models"
)

const photoColumns = `
	photo_id, animal_id, file_path, file_name, sort_order,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPhotoRepository struct {
	pool *pgxpool.Pool
}

// newPgxPhotoRepository creates a new repository for photo metadata.
func newPgxPhotoRepository(pool *pgxpool.Pool) portsrepo.PhotoRepository {
	return &PgxPhotoRepository{pool: pool}
}

// Ensure PgxPhotoRepository implements portsrepo.PhotoRepository
var _ portsrepo.PhotoRepository = (*PgxPhotoRepository)(nil)

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var m models.Photo
	err := row.Scan(
		&m.PhotoID, &m.AnimalID, &m.FilePath, &m.FileName, &m.SortOrder,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainPhoto(m models.Photo) domain.Photo {
	return domain.Photo{
		PhotoID:   m.PhotoID,
		AnimalID:  m.AnimalID,
		FilePath:  m.FilePath,
		FileName:  m.FileName,
		SortOrder: m.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// CountPhotosByAnimal returns the number of photos stored for an animal.
func (r *PgxPhotoRepository) CountPhotosByAnimal(ctx context.Context, animalID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos WHERE animal_id = $1`, animalID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos for animal %s: %w", animalID, err)
	}
	return count, nil
}

// FindFirstPhotoByAnimal returns the animal's lead photo, or nil when it has none.
func (r *PgxPhotoRepository) FindFirstPhotoByAnimal(ctx context.Context, animalID string) (*domain.Photo, error) {
	query := `SELECT ` + photoColumns + `
		FROM photos
		WHERE animal_id = $1
		ORDER BY sort_order, created_at
		LIMIT 1;
	`
	m, err := scanPhoto(r.pool.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find first photo for animal %s: %w", animalID, err)
	}

	d := toDomainPhoto(*m)
	return &d, nil
}

// ListPhotosByAnimal returns all photos ordered by sort order then age.
func (r *PgxPhotoRepository) ListPhotosByAnimal(ctx context.Context, animalID string) ([]domain.Photo, error) {
	query := `SELECT ` + photoColumns + `
		FROM photos
		WHERE animal_id = $1
		ORDER BY sort_order, created_at;
	`
	rows, err := r.pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos for animal %s: %w", animalID, err)
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		m, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, toDomainPhoto(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}
	return photos, nil
}
