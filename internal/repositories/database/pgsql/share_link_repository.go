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

const shareLinkColumns = `
	link_id, animal_id, token, expires_at, revoked_at, created_at, created_by`

type PgxShareLinkRepository struct {
	pool *pgxpool.Pool
}

// newPgxShareLinkRepository creates a new repository for share links.
func newPgxShareLinkRepository(pool *pgxpool.Pool) portsrepo.ShareLinkRepository {
	return &PgxShareLinkRepository{pool: pool}
}

// Ensure PgxShareLinkRepository implements portsrepo.ShareLinkRepository
var _ portsrepo.ShareLinkRepository = (*PgxShareLinkRepository)(nil)

func scanShareLink(row rowScanner) (*models.ShareLink, error) {
	var m models.ShareLink
	err := row.Scan(
		&m.LinkID, &m.AnimalID, &m.Token, &m.ExpiresAt, &m.RevokedAt,
		&m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveShareLink inserts a new share link. A token collision surfaces as
// ErrDuplicate so the service can mint a fresh token and retry.
func (r *PgxShareLinkRepository) SaveShareLink(ctx context.Context, link domain.ShareLink) error {
	m := mapping.ToModelShareLink(link)

	query := `
		INSERT INTO share_links (
			link_id, animal_id, token, expires_at, revoked_at, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.LinkID, m.AnimalID, m.Token, m.ExpiresAt, m.RevokedAt, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: share token already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save share link %s: %w", m.LinkID, err)
	}
	return nil
}

// FindShareLinkByToken retrieves a share link by its token, revoked or not.
func (r *PgxShareLinkRepository) FindShareLinkByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	query := `SELECT ` + shareLinkColumns + ` FROM share_links WHERE token = $1;`

	m, err := scanShareLink(r.pool.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find share link by token: %w", err)
	}

	d := mapping.ToDomainShareLink(*m)
	return &d, nil
}

// ListActiveShareLinksByAnimal returns the animal's unrevoked, unexpired
// links, newest first.
func (r *PgxShareLinkRepository) ListActiveShareLinksByAnimal(ctx context.Context, animalID string, now time.Time) ([]domain.ShareLink, error) {
	query := `SELECT ` + shareLinkColumns + `
		FROM share_links
		WHERE animal_id = $1 AND revoked_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC, link_id;
	`
	rows, err := r.pool.Query(ctx, query, animalID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links for animal %s: %w", animalID, err)
	}
	defer rows.Close()

	var ms []models.ShareLink
	for rows.Next() {
		m, err := scanShareLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share link row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating share link rows: %w", err)
	}
	return mapping.ToDomainShareLinkSlice(ms), nil
}

// RevokeShareLink soft-deletes a link by token.
func (r *PgxShareLinkRepository) RevokeShareLink(ctx context.Context, token string, now time.Time) error {
	query := `
		UPDATE share_links SET revoked_at = $2
		WHERE token = $1 AND revoked_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, token, now)
	if err != nil {
		return fmt.Errorf("failed to revoke share link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
