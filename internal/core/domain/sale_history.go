package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleHistoryEntry is one archived, closed sale cycle for an animal.
//
// Entries are created exactly once, inside the return transaction, by copying
// the animal's open-sale fields. They are never mutated afterwards; the ledger
// is append-only.
type SaleHistoryEntry struct {
	EntryID        string           `json:"entryID"`
	AnimalID       string           `json:"animalID"`
	Seller         string           `json:"seller"`
	BuyerName      string           `json:"buyerName"`
	SalePrice      *decimal.Decimal `json:"salePrice,omitempty"`
	Contact        string           `json:"contact"`
	FollowUpStatus FollowUpStatus   `json:"followUpStatus"`
	SaleNotes      *string          `json:"saleNotes,omitempty"`
	SaleDate       time.Time        `json:"saleDate"`
	ReturnDate     *time.Time       `json:"returnDate,omitempty"`
	ReturnReason   *string          `json:"returnReason,omitempty"`
	AuditFields
}
