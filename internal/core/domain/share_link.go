package domain

import "time"

// ShareLink is a tokenized public link to one animal's listing. Links expire
// after a fixed window and can be revoked early; revocation is a soft delete
// so the token stays burned.
type ShareLink struct {
	LinkID    string     `json:"linkID"`
	AnimalID  string     `json:"animalID"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
}

// Expired reports whether the link's window has closed at the given instant.
func (l *ShareLink) Expired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}

// ShareResolution classifies a public share lookup.
type ShareResolution string

const (
	ShareValid   ShareResolution = "valid"
	ShareExpired ShareResolution = "expired"
	ShareInvalid ShareResolution = "invalid"
)

// SharedAnimalView is the public payload behind a share token. Animal and
// Photos are populated only when Resolution is ShareValid.
type SharedAnimalView struct {
	Resolution ShareResolution
	Animal     *Animal
	Photos     []Photo
}
