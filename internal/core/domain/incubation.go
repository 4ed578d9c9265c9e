package domain

import "time"

// IncubationStatus is the state of one clutch.
type IncubationStatus string

const (
	IncubationInProgress IncubationStatus = "incubating"
	IncubationHatched    IncubationStatus = "hatched"
	IncubationFailed     IncubationStatus = "failed"
)

// IncubationRecord tracks one clutch for a mated pair. Starting a record moves
// both parents to StatusIncubating; closing it (hatched or failed) reverts
// them to StatusPaired.
type IncubationRecord struct {
	RecordID          string           `json:"recordID"`
	FatherID          string           `json:"fatherID"`
	MotherID          string           `json:"motherID"`
	StartDate         time.Time        `json:"startDate"`
	ExpectedHatchDate *time.Time       `json:"expectedHatchDate,omitempty"`
	Status            IncubationStatus `json:"status"`
	EggCount          int              `json:"eggCount"`
	HatchedCount      int              `json:"hatchedCount"`
	Notes             string           `json:"notes,omitempty"`
	AuditFields
}
