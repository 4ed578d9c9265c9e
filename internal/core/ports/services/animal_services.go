package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/dto"
)

// AnimalReaderSvc defines read operations for the animal registry
type AnimalReaderSvc interface {
	// GetAnimal retrieves one animal by id.
	GetAnimal(ctx context.Context, animalID string) (*domain.Animal, error)

	// ListAnimals retrieves a filtered page of animals plus the unpaged total.
	ListAnimals(ctx context.Context, filter portsrepo.ListAnimalsFilter) ([]domain.Animal, int64, error)

	// RingNumberExists reports whether the external tag is already taken.
	RingNumberExists(ctx context.Context, ringNumber string) (bool, error)
}

// AnimalWriterSvc defines write operations for the animal registry
type AnimalWriterSvc interface {
	// CreateAnimal registers a new animal with status available.
	CreateAnimal(ctx context.Context, req dto.CreateAnimalRequest, creatorUserID string) (*domain.Animal, error)

	// UpdateAnimal updates biological and commercial attributes.
	UpdateAnimal(ctx context.Context, animalID string, req dto.UpdateAnimalRequest, updaterUserID string) (*domain.Animal, error)

	// UpdateAnimalStatus applies a registry-owned status change (the breeder
	// designation); all other statuses are owned by their services.
	UpdateAnimalStatus(ctx context.Context, animalID string, target domain.AnimalStatus, updaterUserID string) (*domain.Animal, error)

	// DeleteAnimal soft-deletes an animal that is not paired, incubating or sold.
	DeleteAnimal(ctx context.Context, animalID string, deleterUserID string) error
}

// AnimalSvcFacade combines all animal registry service interfaces
type AnimalSvcFacade interface {
	AnimalReaderSvc
	AnimalWriterSvc
}
