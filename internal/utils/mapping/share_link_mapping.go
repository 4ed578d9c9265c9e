package mapping

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/featherworks/aviary_backend/internal/models"
)

// ToModelShareLink converts a domain ShareLink to a model ShareLink
func ToModelShareLink(d domain.ShareLink) models.ShareLink {
	return models.ShareLink{
		LinkID:    d.LinkID,
		AnimalID:  d.AnimalID,
		Token:     d.Token,
		ExpiresAt: d.ExpiresAt,
		RevokedAt: d.RevokedAt,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainShareLink converts a model ShareLink to a domain ShareLink
func ToDomainShareLink(m models.ShareLink) domain.ShareLink {
	return domain.ShareLink{
		LinkID:    m.LinkID,
		AnimalID:  m.AnimalID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainShareLinkSlice converts a slice of model ShareLink to domain links
func ToDomainShareLinkSlice(ms []models.ShareLink) []domain.ShareLink {
	ds := make([]domain.ShareLink, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShareLink(m)
	}
	return ds
}
