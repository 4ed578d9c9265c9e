package dto

import (
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAnimalRequest defines the data needed to register a new animal.
// Status is not accepted here: registration always starts at "available".
type CreateAnimalRequest struct {
	Species     string           `json:"species" binding:"required"`
	Gender      domain.Gender    `json:"gender" binding:"required,oneof=male female unknown"`
	BirthDate   *time.Time       `json:"birthDate"`
	RingNumber  *string          `json:"ringNumber"`
	Price       *decimal.Decimal `json:"price"`
	MinPrice    *decimal.Decimal `json:"minPrice"`
	MaxPrice    *decimal.Decimal `json:"maxPrice"`
	HealthNotes string           `json:"healthNotes"`
}

// UpdateAnimalRequest defines the attribute updates allowed on an animal.
// Pointers distinguish "not provided" from zero values.
type UpdateAnimalRequest struct {
	Species     *string          `json:"species"`
	BirthDate   *time.Time       `json:"birthDate"`
	RingNumber  *string          `json:"ringNumber"`
	Price       *decimal.Decimal `json:"price"`
	MinPrice    *decimal.Decimal `json:"minPrice"`
	MaxPrice    *decimal.Decimal `json:"maxPrice"`
	HealthNotes *string          `json:"healthNotes"`
}

// UpdateAnimalStatusRequest requests a registry-owned status change. Only the
// breeder designation moves through here; pairing, incubation, sale and return
// statuses are owned by their services.
type UpdateAnimalStatusRequest struct {
	Status domain.AnimalStatus `json:"status" binding:"required,oneof=available breeding"`
}

// AnimalResponse is the full animal record returned by read endpoints,
// decorated with photo metadata.
type AnimalResponse struct {
	AnimalID    string           `json:"animalID"`
	Species     string           `json:"species"`
	Gender      domain.Gender    `json:"gender"`
	BirthDate   *time.Time       `json:"birthDate,omitempty"`
	RingNumber  *string          `json:"ringNumber,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinPrice    *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice    *decimal.Decimal `json:"maxPrice,omitempty"`
	HealthNotes string           `json:"healthNotes,omitempty"`
	Status      domain.AnimalStatus `json:"status"`

	MateID   *string    `json:"mateID,omitempty"`
	PairedAt *time.Time `json:"pairedAt,omitempty"`

	Seller         *string               `json:"seller,omitempty"`
	BuyerName      *string               `json:"buyerName,omitempty"`
	SalePrice      *decimal.Decimal      `json:"salePrice,omitempty"`
	Contact        *string               `json:"contact,omitempty"`
	FollowUpStatus domain.FollowUpStatus `json:"followUpStatus"`
	SaleNotes      *string               `json:"saleNotes,omitempty"`
	SoldAt         *time.Time            `json:"soldAt,omitempty"`

	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	ReturnReason *string    `json:"returnReason,omitempty"`

	PhotoCount    int64   `json:"photoCount"`
	FirstPhotoURL *string `json:"firstPhotoURL,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// AnimalSummary is the compact animal shape embedded in other responses.
type AnimalSummary struct {
	AnimalID   string        `json:"animalID"`
	Species    string        `json:"species"`
	Gender     domain.Gender `json:"gender"`
	RingNumber *string       `json:"ringNumber,omitempty"`
	BirthDate  *time.Time    `json:"birthDate,omitempty"`
}

// ListAnimalsResponse is a simple limit/offset page of animals.
type ListAnimalsResponse struct {
	Total  int64            `json:"total"`
	Items  []AnimalResponse `json:"items"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// RingNumberExistsResponse reports tag availability.
type RingNumberExistsResponse struct {
	Exists bool `json:"exists"`
}

// ToAnimalResponse converts a domain.Animal to AnimalResponse
func ToAnimalResponse(a *domain.Animal) AnimalResponse {
	return AnimalResponse{
		AnimalID:       a.AnimalID,
		Species:        a.Species,
		Gender:         a.Gender,
		BirthDate:      a.BirthDate,
		RingNumber:     a.RingNumber,
		Price:          a.Price,
		MinPrice:       a.MinPrice,
		MaxPrice:       a.MaxPrice,
		HealthNotes:    a.HealthNotes,
		Status:         a.Status,
		MateID:         a.MateID,
		PairedAt:       a.PairedAt,
		Seller:         a.Seller,
		BuyerName:      a.BuyerName,
		SalePrice:      a.SalePrice,
		Contact:        a.Contact,
		FollowUpStatus: a.FollowUpStatus,
		SaleNotes:      a.SaleNotes,
		SoldAt:         a.SoldAt,
		ReturnedAt:     a.ReturnedAt,
		ReturnReason:   a.ReturnReason,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ToAnimalSummary converts a domain.Animal to its compact shape
func ToAnimalSummary(a *domain.Animal) AnimalSummary {
	return AnimalSummary{
		AnimalID:   a.AnimalID,
		Species:    a.Species,
		Gender:     a.Gender,
		RingNumber: a.RingNumber,
		BirthDate:  a.BirthDate,
	}
}

// ToListAnimalsResponse converts a page of domain animals
func ToListAnimalsResponse(animals []domain.Animal, total int64, limit, offset int) ListAnimalsResponse {
	items := make([]AnimalResponse, len(animals))
	for i := range animals {
		items[i] = ToAnimalResponse(&animals[i])
	}
	return ListAnimalsResponse{Total: total, Items: items, Limit: limit, Offset: offset}
}
