package domain

import "time"

// TimelineEventType tags one event in an animal's merged timeline.
type TimelineEventType string

const (
	TimelineBirth        TimelineEventType = "birth"
	TimelineRegistration TimelineEventType = "registration"
	TimelineSale         TimelineEventType = "sale"
	TimelineReturn       TimelineEventType = "return"
	TimelinePairing      TimelineEventType = "pairing"
	TimelineFollowUp     TimelineEventType = "follow_up"
)

// TimelineEvent is one dated entry in the derived timeline projection. It has
// no persistence of its own; events are reconstructed from the animal record,
// the sale history ledger and the follow-up store on every read.
type TimelineEvent struct {
	Timestamp   time.Time         `json:"timestamp"`
	Type        TimelineEventType `json:"type"`
	Description string            `json:"description"`
	Detail      map[string]string `json:"detail,omitempty"`
}
