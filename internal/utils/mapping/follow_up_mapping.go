package mapping

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/models"
)

// ToModelFollowUpEntry converts a domain FollowUpEntry to a model FollowUpEntry
func ToModelFollowUpEntry(d domain.FollowUpEntry) models.FollowUpEntry {
	return models.FollowUpEntry{
		FollowUpID:   d.FollowUpID,
		AnimalID:     d.AnimalID,
		FollowUpDate: d.FollowUpDate,
		Status:       string(d.Status),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFollowUpEntry converts a model FollowUpEntry to a domain FollowUpEntry
func ToDomainFollowUpEntry(m models.FollowUpEntry) domain.FollowUpEntry {
	return domain.FollowUpEntry{
		FollowUpID:   m.FollowUpID,
		AnimalID:     m.AnimalID,
		FollowUpDate: m.FollowUpDate,
		Status:       domain.FollowUpStatus(m.Status),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFollowUpSlice converts a slice of model FollowUpEntry to domain entries
func ToDomainFollowUpSlice(ms []models.FollowUpEntry) []domain.FollowUpEntry {
	ds := make([]domain.FollowUpEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFollowUpEntry(m)
	}
	return ds
}
