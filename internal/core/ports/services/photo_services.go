package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// PhotoReaderSvc exposes photo metadata used to decorate read responses.
// The files themselves live outside this service.
type PhotoReaderSvc interface {
	PhotoCount(ctx context.Context, animalID string) (int64, error)

	// FirstPhotoURL returns the public URL of the animal's lead photo, or nil
	// when it has none.
	FirstPhotoURL(ctx context.Context, animalID string) (*string, error)

	ListPhotos(ctx context.Context, animalID string) ([]domain.Photo, error)
}
