package repositories

import (
	"context"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// ShareLinkRepository defines persistence for public share links.
type ShareLinkRepository interface {
	// SaveShareLink inserts a new link. Returns ErrDuplicate when the token
	// is already taken; callers regenerate and retry.
	SaveShareLink(ctx context.Context, link domain.ShareLink) error

	FindShareLinkByToken(ctx context.Context, token string) (*domain.ShareLink, error)

	// ListActiveShareLinksByAnimal returns the animal's unrevoked, unexpired
	// links, newest first.
	ListActiveShareLinksByAnimal(ctx context.Context, animalID string, now time.Time) ([]domain.ShareLink, error)

	// RevokeShareLink soft-deletes a link by token. Returns ErrNotFound when
	// the token is unknown or already revoked.
	RevokeShareLink(ctx context.Context, token string, now time.Time) error
}
