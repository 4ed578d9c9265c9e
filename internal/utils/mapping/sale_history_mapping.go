package mapping

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/models"
)

// ToModelSaleHistoryEntry converts a domain SaleHistoryEntry to a model SaleHistoryEntry
func ToModelSaleHistoryEntry(d domain.SaleHistoryEntry) models.SaleHistoryEntry {
	return models.SaleHistoryEntry{
		EntryID:        d.EntryID,
		AnimalID:       d.AnimalID,
		Seller:         d.Seller,
		BuyerName:      d.BuyerName,
		SalePrice:      d.SalePrice,
		Contact:        d.Contact,
		FollowUpStatus: string(d.FollowUpStatus),
		SaleNotes:      d.SaleNotes,
		SaleDate:       d.SaleDate,
		ReturnDate:     d.ReturnDate,
		ReturnReason:   d.ReturnReason,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSaleHistoryEntry converts a model SaleHistoryEntry to a domain SaleHistoryEntry
func ToDomainSaleHistoryEntry(m models.SaleHistoryEntry) domain.SaleHistoryEntry {
	return domain.SaleHistoryEntry{
		EntryID:        m.EntryID,
		AnimalID:       m.AnimalID,
		Seller:         m.Seller,
		BuyerName:      m.BuyerName,
		SalePrice:      m.SalePrice,
		Contact:        m.Contact,
		FollowUpStatus: domain.FollowUpStatus(m.FollowUpStatus),
		SaleNotes:      m.SaleNotes,
		SaleDate:       m.SaleDate,
		ReturnDate:     m.ReturnDate,
		ReturnReason:   m.ReturnReason,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleHistorySlice converts a slice of model SaleHistoryEntry to domain entries
func ToDomainSaleHistorySlice(ms []models.SaleHistoryEntry) []domain.SaleHistoryEntry {
	ds := make([]domain.SaleHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleHistoryEntry(m)
	}
	return ds
}
