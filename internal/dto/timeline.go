package dto

import (
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// TimelineEventResponse is one event in the merged timeline.
type TimelineEventResponse struct {
	Timestamp   time.Time                `json:"timestamp"`
	Type        domain.TimelineEventType `json:"type"`
	Description string                   `json:"description"`
	Detail      map[string]string        `json:"detail,omitempty"`
}

// TimelineResponse is the full chronological view for one animal.
type TimelineResponse struct {
	AnimalID string                  `json:"animalID"`
	Events   []TimelineEventResponse `json:"events"`
}

// ToTimelineResponse converts domain timeline events
func ToTimelineResponse(animalID string, events []domain.TimelineEvent) TimelineResponse {
	items := make([]TimelineEventResponse, len(events))
	for i, e := range events {
		items[i] = TimelineEventResponse{
			Timestamp:   e.Timestamp,
			Type:        e.Type,
			Description: e.Description,
			Detail:      e.Detail,
		}
	}
	return TimelineResponse{AnimalID: animalID, Events: items}
}
