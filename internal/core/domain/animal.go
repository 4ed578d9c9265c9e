package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender is the biological sex recorded for an animal.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// AnimalStatus is the lifecycle state of an animal.
//
// "returned" is intentionally absent: a return is an operation, not a resting
// state. Returning a sold animal archives the sale and lands the animal back
// on StatusAvailable with ReturnedAt/ReturnReason stamped for display.
type AnimalStatus string

const (
	StatusAvailable  AnimalStatus = "available"
	StatusBreeding   AnimalStatus = "breeding"
	StatusPaired     AnimalStatus = "paired"
	StatusIncubating AnimalStatus = "incubating"
	StatusSold       AnimalStatus = "sold"
)

// FollowUpStatus tracks post-sale customer follow-up.
type FollowUpStatus string

const (
	FollowUpPending     FollowUpStatus = "pending"
	FollowUpCompleted   FollowUpStatus = "completed"
	FollowUpUnreachable FollowUpStatus = "unreachable"
)

// Animal is a tracked breeding/sale unit.
//
// MateID is a symmetric self-reference: if A.MateID points at B then B.MateID
// points back at A. The pairing repository enforces this by always updating
// both rows in one transaction; nothing else may write MateID/PairedAt.
//
// The Seller..SoldAt block describes the currently open sale cycle, if any.
// These fields are cleared when the cycle is archived into the sale history
// ledger on return.
type Animal struct {
	AnimalID    string           `json:"animalID"`
	Species     string           `json:"species"`
	Gender      Gender           `json:"gender"`
	BirthDate   *time.Time       `json:"birthDate,omitempty"`
	RingNumber  *string          `json:"ringNumber,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinPrice    *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice    *decimal.Decimal `json:"maxPrice,omitempty"`
	HealthNotes string           `json:"healthNotes,omitempty"`
	Status      AnimalStatus     `json:"status"`

	MateID   *string    `json:"mateID,omitempty"`
	PairedAt *time.Time `json:"pairedAt,omitempty"`

	Seller         *string          `json:"seller,omitempty"`
	BuyerName      *string          `json:"buyerName,omitempty"`
	SalePrice      *decimal.Decimal `json:"salePrice,omitempty"`
	Contact        *string          `json:"contact,omitempty"`
	FollowUpStatus FollowUpStatus   `json:"followUpStatus"`
	SaleNotes      *string          `json:"saleNotes,omitempty"`
	SoldAt         *time.Time       `json:"soldAt,omitempty"`

	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	ReturnReason *string    `json:"returnReason,omitempty"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// HasOpenSale reports whether the animal carries an unarchived sale cycle.
func (a *Animal) HasOpenSale() bool {
	return a.SoldAt != nil && a.Seller != nil
}
