package repositories

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// PhotoRepository reads photo metadata used to decorate animal responses.
// Upload and file serving are outside this service.
type PhotoRepository interface {
	// CountPhotosByAnimal returns the number of photos stored for an animal.
	CountPhotosByAnimal(ctx context.Context, animalID string) (int64, error)

	// FindFirstPhotoByAnimal returns the animal's lead photo, or nil when it
	// has none.
	FindFirstPhotoByAnimal(ctx context.Context, animalID string) (*domain.Photo, error)

	// ListPhotosByAnimal returns all photos ordered by sort order then age.
	ListPhotosByAnimal(ctx context.Context, animalID string) ([]domain.Photo, error)
}
