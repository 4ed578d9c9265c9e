package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleHistoryEntry mirrors the sale_history table. Rows are insert-only.
type SaleHistoryEntry struct {
	EntryID        string           `db:"entry_id"`
	AnimalID       string           `db:"animal_id"`
	Seller         string           `db:"seller"`
	BuyerName      string           `db:"buyer_name"`
	SalePrice      *decimal.Decimal `db:"sale_price"`
	Contact        string           `db:"contact"`
	FollowUpStatus string           `db:"follow_up_status"`
	SaleNotes      *string          `db:"sale_notes"`
	SaleDate       time.Time        `db:"sale_date"`
	ReturnDate     *time.Time       `db:"return_date"`
	ReturnReason   *string          `db:"return_reason"`
	AuditFields
}
