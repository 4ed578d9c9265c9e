package models

import "time"

// ShareLink mirrors the share_links table.
type ShareLink struct {
	LinkID    string     `db:"link_id"`
	AnimalID  string     `db:"animal_id"`
	Token     string     `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
	CreatedBy string     `db:"created_by"`
}
