package dto

import (
	"strings"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShareLinkResponse is one share link with its public URL.
type ShareLinkResponse struct {
	LinkID        string    `json:"linkID"`
	AnimalID      string    `json:"animalID"`
	Token         string    `json:"token"`
	URL           string    `json:"url"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	RemainingDays int       `json:"remainingDays"`
}

// ListShareLinksResponse lists an animal's usable links.
type ListShareLinksResponse struct {
	Total int                 `json:"total"`
	Items []ShareLinkResponse `json:"items"`
}

// SharedAnimalInfo is the non-sensitive animal shape exposed behind a public
// share token. Pricing range, buyer details and audit fields stay private.
type SharedAnimalInfo struct {
	AnimalID    string              `json:"animalID"`
	Species     string              `json:"species"`
	Gender      domain.Gender       `json:"gender"`
	Price       *decimal.Decimal    `json:"price,omitempty"`
	BirthDate   *time.Time          `json:"birthDate,omitempty"`
	RingNumber  *string             `json:"ringNumber,omitempty"`
	HealthNotes string              `json:"healthNotes,omitempty"`
	Status      domain.AnimalStatus `json:"status"`
}

// SharedPhoto is one photo on the public share page.
type SharedPhoto struct {
	PhotoID  string `json:"photoID"`
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

// ResolveShareResponse is the public payload for a share token lookup.
// Status is "valid", "expired" or "invalid"; animal and photos are present
// only on "valid".
type ResolveShareResponse struct {
	Status domain.ShareResolution `json:"status"`
	Animal *SharedAnimalInfo      `json:"animal,omitempty"`
	Photos []SharedPhoto          `json:"photos,omitempty"`
}

// remainingDays is the number of whole days until expiry, floored at zero.
func remainingDays(expiresAt, now time.Time) int {
	if !expiresAt.After(now) {
		return 0
	}
	return int(expiresAt.Sub(now).Hours() / 24)
}

// ToShareLinkResponse converts a domain.ShareLink, building the public URL
// from the configured base.
func ToShareLinkResponse(l *domain.ShareLink, baseURL string, now time.Time) ShareLinkResponse {
	return ShareLinkResponse{
		LinkID:        l.LinkID,
		AnimalID:      l.AnimalID,
		Token:         l.Token,
		URL:           strings.TrimRight(baseURL, "/") + "/share/" + l.Token,
		CreatedAt:     l.CreatedAt,
		ExpiresAt:     l.ExpiresAt,
		RemainingDays: remainingDays(l.ExpiresAt, now),
	}
}

// ToListShareLinksResponse converts a slice of domain links
func ToListShareLinksResponse(links []domain.ShareLink, baseURL string, now time.Time) ListShareLinksResponse {
	items := make([]ShareLinkResponse, len(links))
	for i := range links {
		items[i] = ToShareLinkResponse(&links[i], baseURL, now)
	}
	return ListShareLinksResponse{Total: len(items), Items: items}
}

// ToResolveShareResponse converts a domain.SharedAnimalView
func ToResolveShareResponse(v *domain.SharedAnimalView) ResolveShareResponse {
	res := ResolveShareResponse{Status: v.Resolution}
	if v.Resolution != domain.ShareValid {
		return res
	}

	res.Animal = &SharedAnimalInfo{
		AnimalID:    v.Animal.AnimalID,
		Species:     v.Animal.Species,
		Gender:      v.Animal.Gender,
		Price:       v.Animal.Price,
		BirthDate:   v.Animal.BirthDate,
		RingNumber:  v.Animal.RingNumber,
		HealthNotes: v.Animal.HealthNotes,
		Status:      v.Animal.Status,
	}
	res.Photos = make([]SharedPhoto, len(v.Photos))
	for i, p := range v.Photos {
		res.Photos[i] = SharedPhoto{PhotoID: p.PhotoID, FilePath: p.FilePath, FileName: p.FileName}
	}
	return res
}
