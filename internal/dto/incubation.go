package dto

import (
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// StartIncubationRequest opens a clutch record for a mated pair.
type StartIncubationRequest struct {
	FatherID          string     `json:"fatherID" binding:"required"`
	MotherID          string     `json:"motherID" binding:"required"`
	StartDate         *time.Time `json:"startDate"`
	ExpectedHatchDate *time.Time `json:"expectedHatchDate"`
	EggCount          int        `json:"eggCount" binding:"gte=0"`
	Notes             string     `json:"notes"`
}

// UpdateIncubationRequest adjusts an in-progress clutch record.
type UpdateIncubationRequest struct {
	ExpectedHatchDate *time.Time `json:"expectedHatchDate"`
	EggCount          *int       `json:"eggCount" binding:"omitempty,gte=0"`
	Notes             *string    `json:"notes"`
}

// CompleteIncubationRequest closes a clutch as hatched.
type CompleteIncubationRequest struct {
	HatchedCount int `json:"hatchedCount" binding:"gte=0"`
}

// FailIncubationRequest closes a clutch as failed.
type FailIncubationRequest struct {
	Notes *string `json:"notes"`
}

// IncubationResponse is one clutch record.
type IncubationResponse struct {
	RecordID          string                  `json:"recordID"`
	FatherID          string                  `json:"fatherID"`
	MotherID          string                  `json:"motherID"`
	Father            *AnimalSummary          `json:"father,omitempty"`
	Mother            *AnimalSummary          `json:"mother,omitempty"`
	StartDate         time.Time               `json:"startDate"`
	ExpectedHatchDate *time.Time              `json:"expectedHatchDate,omitempty"`
	Status            domain.IncubationStatus `json:"status"`
	EggCount          int                     `json:"eggCount"`
	HatchedCount      int                     `json:"hatchedCount"`
	Notes             string                  `json:"notes,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
}

// ListIncubationResponse is a page of clutch records.
type ListIncubationResponse struct {
	Total  int64                `json:"total"`
	Items  []IncubationResponse `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ToIncubationResponse converts a domain.IncubationRecord
func ToIncubationResponse(r *domain.IncubationRecord) IncubationResponse {
	return IncubationResponse{
		RecordID:          r.RecordID,
		FatherID:          r.FatherID,
		MotherID:          r.MotherID,
		StartDate:         r.StartDate,
		ExpectedHatchDate: r.ExpectedHatchDate,
		Status:            r.Status,
		EggCount:          r.EggCount,
		HatchedCount:      r.HatchedCount,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
	}
}

// ToListIncubationResponse converts a page of domain records
func ToListIncubationResponse(records []domain.IncubationRecord, total int64, limit, offset int) ListIncubationResponse {
	items := make([]IncubationResponse, len(records))
	for i := range records {
		items[i] = ToIncubationResponse(&records[i])
	}
	return ListIncubationResponse{Total: total, Items: items, Limit: limit, Offset: offset}
}
