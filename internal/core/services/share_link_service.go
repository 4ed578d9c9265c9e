package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

const (
	// shareLinkTTL is the validity window stamped on every new link.
	shareLinkTTL = 7 * 24 * time.Hour

	// shareTokenBytes yields a 22-character URL-safe token.
	shareTokenBytes = 16

	// shareTokenAttempts bounds the insert retries on token collision.
	shareTokenAttempts = 3
)

type shareLinkService struct {
	shareRepo  portsrepo.ShareLinkRepository
	animalRepo portsrepo.AnimalReader
	photoRepo  portsrepo.PhotoRepository
}

// NewShareLinkService creates a new share link service.
func NewShareLinkService(shareRepo portsrepo.ShareLinkRepository, animalRepo portsrepo.AnimalReader, photoRepo portsrepo.PhotoRepository) portssvc.ShareSvcFacade {
	return &shareLinkService{shareRepo: shareRepo, animalRepo: animalRepo, photoRepo: photoRepo}
}

var _ portssvc.ShareSvcFacade = (*shareLinkService)(nil)

func newShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *shareLinkService) GenerateShareLink(ctx context.Context, animalID string, creatorUserID string) (*domain.ShareLink, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for attempt := 0; attempt < shareTokenAttempts; attempt++ {
		token, err := newShareToken()
		if err != nil {
			return nil, err
		}

		link := domain.ShareLink{
			LinkID:    uuid.NewString(),
			AnimalID:  animalID,
			Token:     token,
			ExpiresAt: now.Add(shareLinkTTL),
			CreatedAt: now,
			CreatedBy: creatorUserID,
		}

		err = s.shareRepo.SaveShareLink(ctx, link)
		if err == nil {
			logger.Info("Share link generated", slog.String("animal_id", animalID), slog.String("link_id", link.LinkID))
			return &link, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Token collision; mint a fresh one.
			continue
		}
		logger.Error("Failed to save share link", slog.String("animal_id", animalID), slog.String("error", err.Error()))
		return nil, err
	}

	return nil, fmt.Errorf("%w: could not allocate a unique share token", apperrors.ErrConflict)
}

func (s *shareLinkService) ListShareLinks(ctx context.Context, animalID string) ([]domain.ShareLink, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.shareRepo.ListActiveShareLinksByAnimal(ctx, animalID, time.Now().UTC())
}

func (s *shareLinkService) ResolveShareLink(ctx context.Context, token string) (*domain.SharedAnimalView, error) {
	link, err := s.shareRepo.FindShareLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.SharedAnimalView{Resolution: domain.ShareInvalid}, nil
		}
		return nil, err
	}

	if link.RevokedAt != nil {
		return &domain.SharedAnimalView{Resolution: domain.ShareInvalid}, nil
	}
	if link.Expired(time.Now().UTC()) {
		return &domain.SharedAnimalView{Resolution: domain.ShareExpired}, nil
	}

	animal, err := s.animalRepo.FindAnimalByID(ctx, link.AnimalID)
	if err != nil {
		// The animal was deleted after the link was minted.
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.SharedAnimalView{Resolution: domain.ShareInvalid}, nil
		}
		return nil, err
	}

	photos, err := s.photoRepo.ListPhotosByAnimal(ctx, animal.AnimalID)
	if err != nil {
		return nil, err
	}

	return &domain.SharedAnimalView{
		Resolution: domain.ShareValid,
		Animal:     animal,
		Photos:     photos,
	}, nil
}

func (s *shareLinkService) RevokeShareLink(ctx context.Context, token string) error {
	return s.shareRepo.RevokeShareLink(ctx, token, time.Now().UTC())
}
