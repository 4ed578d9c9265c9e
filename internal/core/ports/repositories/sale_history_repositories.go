package repositories

import (
	"context"
	"time"

	"github.com/featherworks/aviary_backend/internal/core/domain"
)

// SaleHistoryFilter narrows the global history listing.
type SaleHistoryFilter struct {
	// Keyword matches the buyer name as a substring.
	Keyword string
	// HasReturn filters on the presence of a return date when set.
	HasReturn *bool
	Limit     int
	Offset    int
}

// SaleHistoryReader defines read operations over the append-only ledger
type SaleHistoryReader interface {
	// ListSaleHistoryByAnimal returns an animal's archived cycles, newest sale first.
	ListSaleHistoryByAnimal(ctx context.Context, animalID string) ([]domain.SaleHistoryEntry, error)

	// ListSaleHistory returns a filtered page of archived cycles plus the total.
	ListSaleHistory(ctx context.Context, filter SaleHistoryFilter) ([]domain.SaleHistoryEntry, int64, error)

	// CountSaleHistoryByAnimal returns the number of completed cycles for one animal.
	CountSaleHistoryByAnimal(ctx context.Context, animalID string) (int64, error)
}

// SaleHistoryWriter defines the single write path into the ledger.
type SaleHistoryWriter interface {
	// ArchiveReturn executes the whole return as one transaction: it locks the
	// animal row, verifies the open sale is still there, appends the archived
	// entry copying the open-sale fields (sale_date = sold_at, return_date =
	// returnedAt) and resets the animal via ResetAnimalAfterReturnInTx.
	// A racing mutation that removed the open sale surfaces as
	// apperrors.ErrConflict; nothing is written in that case.
	ArchiveReturn(ctx context.Context, animalID string, reason string, returnedAt time.Time, updatedBy string) (*domain.SaleHistoryEntry, error)
}

// SaleHistoryRepositoryFacade combines ledger read and write interfaces
type SaleHistoryRepositoryFacade interface {
	SaleHistoryReader
	SaleHistoryWriter
}

// SaleHistoryRepositoryWithTx extends the facade with transaction capabilities
type SaleHistoryRepositoryWithTx interface {
	SaleHistoryRepositoryFacade
	TransactionManager
}
