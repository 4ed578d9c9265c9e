package dto

import (
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest opens a sale cycle on an animal.
type RecordSaleRequest struct {
	Seller         string                `json:"seller" binding:"required"`
	BuyerName      string                `json:"buyerName" binding:"required"`
	SalePrice      *decimal.Decimal      `json:"salePrice"`
	Contact        string                `json:"contact"`
	FollowUpStatus domain.FollowUpStatus `json:"followUpStatus" binding:"omitempty,oneof=pending completed unreachable"`
	SaleNotes      *string               `json:"saleNotes"`
}

// RecordReturnRequest closes the open sale cycle of a sold animal.
type RecordReturnRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// SaleHistoryEntryResponse is one archived sale cycle.
type SaleHistoryEntryResponse struct {
	EntryID        string                `json:"entryID"`
	AnimalID       string                `json:"animalID"`
	Animal         *AnimalSummary        `json:"animal,omitempty"`
	Seller         string                `json:"seller"`
	BuyerName      string                `json:"buyerName"`
	SalePrice      *decimal.Decimal      `json:"salePrice,omitempty"`
	Contact        string                `json:"contact"`
	FollowUpStatus domain.FollowUpStatus `json:"followUpStatus"`
	SaleNotes      *string               `json:"saleNotes,omitempty"`
	SaleDate       time.Time             `json:"saleDate"`
	ReturnDate     *time.Time            `json:"returnDate,omitempty"`
	ReturnReason   *string               `json:"returnReason,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ListSaleHistoryResponse is a page of archived cycles.
type ListSaleHistoryResponse struct {
	Total  int64                      `json:"total"`
	Items  []SaleHistoryEntryResponse `json:"items"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}

// OpenSaleResponse is one currently sold animal, viewed as a sales record.
type OpenSaleResponse struct {
	AnimalID       string                `json:"animalID"`
	Animal         AnimalSummary         `json:"animal"`
	Seller         *string               `json:"seller,omitempty"`
	BuyerName      *string               `json:"buyerName,omitempty"`
	SalePrice      *decimal.Decimal      `json:"salePrice,omitempty"`
	Contact        *string               `json:"contact,omitempty"`
	FollowUpStatus domain.FollowUpStatus `json:"followUpStatus"`
	SaleNotes      *string               `json:"saleNotes,omitempty"`
	SoldAt         *time.Time            `json:"soldAt,omitempty"`
	PhotoURL       *string               `json:"photoURL,omitempty"`
}

// ListOpenSalesResponse is a page of open sale cycles.
type ListOpenSalesResponse struct {
	Total  int64              `json:"total"`
	Items  []OpenSaleResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ToSaleHistoryEntryResponse converts a domain.SaleHistoryEntry
func ToSaleHistoryEntryResponse(e *domain.SaleHistoryEntry) SaleHistoryEntryResponse {
	return SaleHistoryEntryResponse{
		EntryID:        e.EntryID,
		AnimalID:       e.AnimalID,
		Seller:         e.Seller,
		BuyerName:      e.BuyerName,
		SalePrice:      e.SalePrice,
		Contact:        e.Contact,
		FollowUpStatus: e.FollowUpStatus,
		SaleNotes:      e.SaleNotes,
		SaleDate:       e.SaleDate,
		ReturnDate:     e.ReturnDate,
		ReturnReason:   e.ReturnReason,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListSaleHistoryResponse converts a page of domain entries
func ToListSaleHistoryResponse(entries []domain.SaleHistoryEntry, total int64, limit, offset int) ListSaleHistoryResponse {
	items := make([]SaleHistoryEntryResponse, len(entries))
	for i := range entries {
		items[i] = ToSaleHistoryEntryResponse(&entries[i])
	}
	return ListSaleHistoryResponse{Total: total, Items: items, Limit: limit, Offset: offset}
}

// ToOpenSaleResponse views a sold domain.Animal as a sales record
func ToOpenSaleResponse(a *domain.Animal) OpenSaleResponse {
	return OpenSaleResponse{
		AnimalID:       a.AnimalID,
		Animal:         ToAnimalSummary(a),
		Seller:         a.Seller,
		BuyerName:      a.BuyerName,
		SalePrice:      a.SalePrice,
		Contact:        a.Contact,
		FollowUpStatus: a.FollowUpStatus,
		SaleNotes:      a.SaleNotes,
		SoldAt:         a.SoldAt,
	}
}
