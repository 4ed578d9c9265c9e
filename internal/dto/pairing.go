package dto

import "time"

// PairRequest asks for two breeding animals to be bonded.
type PairRequest struct {
	MaleID   string `json:"maleID" binding:"required"`
	FemaleID string `json:"femaleID" binding:"required"`
}

// PairResponse returns both sides of a freshly established pairing.
type PairResponse struct {
	Male     AnimalResponse `json:"male"`
	Female   AnimalResponse `json:"female"`
	PairedAt time.Time      `json:"pairedAt"`
}

// MateResponse describes an animal's current mate, if any.
type MateResponse struct {
	HasMate  bool           `json:"hasMate"`
	Mate     *AnimalSummary `json:"mate,omitempty"`
	PairedAt *time.Time     `json:"pairedAt,omitempty"`
}

// EligibleMatesResponse lists candidate partners for a male.
type EligibleMatesResponse struct {
	Items []AnimalSummary `json:"items"`
}
