package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
)

type photoService struct {
	photoRepo portsrepo.PhotoRepository
}

// NewPhotoService creates a new photo metadata service.
func NewPhotoService(photoRepo portsrepo.PhotoRepository) portssvc.PhotoReaderSvc {
	return &photoService{photoRepo: photoRepo}
}

var _ portssvc.PhotoReaderSvc = (*photoService)(nil)

func (s *photoService) PhotoCount(ctx context.Context, animalID string) (int64, error) {
	return s.photoRepo.CountPhotosByAnimal(ctx, animalID)
}

func (s *photoService) FirstPhotoURL(ctx context.Context, animalID string) (*string, error) {
	photo, err := s.photoRepo.FindFirstPhotoByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, nil
	}
	url := photo.FilePath
	return &url, nil
}

func (s *photoService) ListPhotos(ctx context.Context, animalID string) ([]domain.Photo, error) {
	return s.photoRepo.ListPhotosByAnimal(ctx, animalID)
}
