package mapping

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/models"
)

// ToModelAnimal converts a domain Animal to a model Animal
func ToModelAnimal(d domain.Animal) models.Animal {
	return models.Animal{
		AnimalID:       d.AnimalID,
		Species:        d.Species,
		Gender:         string(d.Gender),
		BirthDate:      d.BirthDate,
		RingNumber:     d.RingNumber,
		Price:          d.Price,
		MinPrice:       d.MinPrice,
		MaxPrice:       d.MaxPrice,
		HealthNotes:    d.HealthNotes,
		Status:         string(d.Status),
		MateID:         d.MateID,
		PairedAt:       d.PairedAt,
		Seller:         d.Seller,
		BuyerName:      d.BuyerName,
		SalePrice:      d.SalePrice,
		Contact:        d.Contact,
		FollowUpStatus: string(d.FollowUpStatus),
		SaleNotes:      d.SaleNotes,
		SoldAt:         d.SoldAt,
		ReturnedAt:     d.ReturnedAt,
		ReturnReason:   d.ReturnReason,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainAnimal converts a model Animal to a domain Animal
func ToDomainAnimal(m models.Animal) domain.Animal {
	return domain.Animal{
		AnimalID:       m.AnimalID,
		Species:        m.Species,
		Gender:         domain.Gender(m.Gender),
		BirthDate:      m.BirthDate,
		RingNumber:     m.RingNumber,
		Price:          m.Price,
		MinPrice:       m.MinPrice,
		MaxPrice:       m.MaxPrice,
		HealthNotes:    m.HealthNotes,
		Status:         domain.AnimalStatus(m.Status),
		MateID:         m.MateID,
		PairedAt:       m.PairedAt,
		Seller:         m.Seller,
		BuyerName:      m.BuyerName,
		SalePrice:      m.SalePrice,
		Contact:        m.Contact,
		FollowUpStatus: domain.FollowUpStatus(m.FollowUpStatus),
		SaleNotes:      m.SaleNotes,
		SoldAt:         m.SoldAt,
		ReturnedAt:     m.ReturnedAt,
		ReturnReason:   m.ReturnReason,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainAnimalSlice converts a slice of model Animals to a slice of domain Animals
func ToDomainAnimalSlice(ms []models.Animal) []domain.Animal {
	ds := make([]domain.Animal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAnimal(m)
	}
	return ds
}
