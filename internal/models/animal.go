package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Animal mirrors the animals table. Nullable columns use pointers so the pgx
// scan round-trips NULL without sentinel values.
type Animal struct {
	AnimalID    string           `db:"animal_id"`
	Species     string           `db:"species"`
	Gender      string           `db:"gender"`
	BirthDate   *time.Time       `db:"birth_date"`
	RingNumber  *string          `db:"ring_number"`
	Price       *decimal.Decimal `db:"price"`
	MinPrice    *decimal.Decimal `db:"min_price"`
	MaxPrice    *decimal.Decimal `db:"max_price"`
	HealthNotes string           `db:"health_notes"`
	Status      string           `db:"status"`

	MateID   *string    `db:"mate_id"`
	PairedAt *time.Time `db:"paired_at"`

	Seller         *string          `db:"seller"`
	BuyerName      *string          `db:"buyer_name"`
	SalePrice      *decimal.Decimal `db:"sale_price"`
	Contact        *string          `db:"contact"`
	FollowUpStatus string           `db:"follow_up_status"`
	SaleNotes      *string          `db:"sale_notes"`
	SoldAt         *time.Time       `db:"sold_at"`

	ReturnedAt   *time.Time `db:"returned_at"`
	ReturnReason *string    `db:"return_reason"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
