package services

import (
	"context"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	"github.com/featherworks/aviary_backend/internal/dto"
)

// SalesReaderSvc defines read operations over sales data
type SalesReaderSvc interface {
	// ListSaleHistory returns an animal's archived cycles, newest sale first.
	ListSaleHistory(ctx context.Context, animalID string) ([]domain.SaleHistoryEntry, error)

	// ListAllSaleHistory returns a filtered page of the global ledger.
	ListAllSaleHistory(ctx context.Context, filter portsrepo.SaleHistoryFilter) ([]domain.SaleHistoryEntry, int64, error)

	// ListOpenSales returns currently sold animals (open cycles).
	ListOpenSales(ctx context.Context, filter portsrepo.OpenSalesFilter) ([]domain.Animal, int64, error)
}

// SalesWriterSvc defines the sale/return lifecycle mutations
type SalesWriterSvc interface {
	// RecordSale opens a sale cycle: fills the animal's active-sale fields and
	// moves it to sold. Rejected while the animal is paired, incubating or
	// already sold (return must archive the open cycle first).
	RecordSale(ctx context.Context, animalID string, req dto.RecordSaleRequest, actorUserID string) (*domain.Animal, error)

	// RecordReturn closes the open cycle: archives it as an immutable history
	// entry and resets the animal to available, atomically. Requires the
	// animal to be sold.
	RecordReturn(ctx context.Context, animalID string, reason string, actorUserID string) (*domain.SaleHistoryEntry, error)
}

// SalesSvcFacade combines the sale/return ledger interfaces
type SalesSvcFacade interface {
	SalesReaderSvc
	SalesWriterSvc
}
