package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// ShareSvcFacade manages tokenized public share links for animals.
type ShareSvcFacade interface {
	// GenerateShareLink mints a fresh link for the animal with the default
	// validity window.
	GenerateShareLink(ctx context.Context, animalID string, creatorUserID string) (*domain.ShareLink, error)

	// ListShareLinks returns the animal's currently usable links.
	ListShareLinks(ctx context.Context, animalID string) ([]domain.ShareLink, error)

	// ResolveShareLink is the public lookup behind a share URL. Unknown,
	// revoked or expired tokens resolve without error; the view's Resolution
	// says which.
	ResolveShareLink(ctx context.Context, token string) (*domain.SharedAnimalView, error)

	RevokeShareLink(ctx context.Context, token string) error
}
