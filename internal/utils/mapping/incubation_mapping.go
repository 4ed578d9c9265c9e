package mapping

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/models"
)

// ToModelIncubationRecord converts a domain IncubationRecord to a model IncubationRecord
func ToModelIncubationRecord(d domain.IncubationRecord) models.IncubationRecord {
	return models.IncubationRecord{
		RecordID:          d.RecordID,
		FatherID:          d.FatherID,
		MotherID:          d.MotherID,
		StartDate:         d.StartDate,
		ExpectedHatchDate: d.ExpectedHatchDate,
		Status:            string(d.Status),
		EggCount:          d.EggCount,
		HatchedCount:      d.HatchedCount,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncubationRecord converts a model IncubationRecord to a domain IncubationRecord
func ToDomainIncubationRecord(m models.IncubationRecord) domain.IncubationRecord {
	return domain.IncubationRecord{
		RecordID:          m.RecordID,
		FatherID:          m.FatherID,
		MotherID:          m.MotherID,
		StartDate:         m.StartDate,
		ExpectedHatchDate: m.ExpectedHatchDate,
		Status:            domain.IncubationStatus(m.Status),
		EggCount:          m.EggCount,
		HatchedCount:      m.HatchedCount,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncubationSlice converts a slice of model IncubationRecord to domain records
func ToDomainIncubationSlice(ms []models.IncubationRecord) []domain.IncubationRecord {
	ds := make([]domain.IncubationRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncubationRecord(m)
	}
	return ds
}
