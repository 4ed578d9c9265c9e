package models

import "time"

// IncubationRecord mirrors the incubation_records table.
type IncubationRecord struct {
	RecordID          string     `db:"record_id"`
	FatherID          string     `db:"father_id"`
	MotherID          string     `db:"mother_id"`
	StartDate         time.Time  `db:"start_date"`
	ExpectedHatchDate *time.Time `db:"expected_hatch_date"`
	Status            string     `db:"status"`
	EggCount          int        `db:"egg_count"`
	HatchedCount      int        `db:"hatched_count"`
	Notes             string     `db:"notes"`
	AuditFields
}
