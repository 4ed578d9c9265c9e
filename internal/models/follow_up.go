package models

import "time"

// FollowUpEntry mirrors the follow_ups table.
type FollowUpEntry struct {
	FollowUpID   string    `db:"follow_up_id"`
	AnimalID     string    `db:"animal_id"`
	FollowUpDate time.Time `db:"follow_up_date"`
	Status       string    `db:"status"`
	Notes        string    `db:"notes"`
	AuditFields
}
