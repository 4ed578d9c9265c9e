package dto

import (
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// CreateFollowUpRequest records one follow-up contact for an animal.
type CreateFollowUpRequest struct {
	FollowUpDate *time.Time            `json:"followUpDate"`
	Status       domain.FollowUpStatus `json:"status" binding:"required,oneof=pending completed unreachable"`
	Notes        string                `json:"notes"`
}

// UpdateFollowUpRequest updates an existing follow-up entry.
type UpdateFollowUpRequest struct {
	FollowUpDate *time.Time             `json:"followUpDate"`
	Status       *domain.FollowUpStatus `json:"status" binding:"omitempty,oneof=pending completed unreachable"`
	Notes        *string                `json:"notes"`
}

// FollowUpResponse is one follow-up entry.
type FollowUpResponse struct {
	FollowUpID   string                `json:"followUpID"`
	AnimalID     string                `json:"animalID"`
	FollowUpDate time.Time             `json:"followUpDate"`
	Status       domain.FollowUpStatus `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToFollowUpResponse converts a domain.FollowUpEntry
func ToFollowUpResponse(e *domain.FollowUpEntry) FollowUpResponse {
	return FollowUpResponse{
		FollowUpID:   e.FollowUpID,
		AnimalID:     e.AnimalID,
		FollowUpDate: e.FollowUpDate,
		Status:       e.Status,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// ToListFollowUpsResponse converts a slice of domain entries
func ToListFollowUpsResponse(entries []domain.FollowUpEntry) []FollowUpResponse {
	res := make([]FollowUpResponse, len(entries))
	for i := range entries {
		res[i] = ToFollowUpResponse(&entries[i])
	}
	return res
}
