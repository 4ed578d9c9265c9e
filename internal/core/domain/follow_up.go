package domain

import "time"

// FollowUpEntry is an operator-created follow-up note for an animal. It has an
// independent lifecycle: it contributes to the timeline but never drives a
// status transition.
type FollowUpEntry struct {
	FollowUpID   string         `json:"followUpID"`
	AnimalID     string         `json:"animalID"`
	FollowUpDate time.Time      `json:"followUpDate"`
	Status       FollowUpStatus `json:"status"`
	Notes        string         `json:"notes,omitempty"`
	AuditFields
}
