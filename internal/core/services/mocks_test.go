package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
)

// MockAnimalRepository is a mock type for the AnimalRepositoryWithTx interface
type MockAnimalRepository struct {
	mock.Mock
}

func (m *MockAnimalRepository) FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) ListAnimals(ctx context.Context, filter portsrepo.ListAnimalsFilter) ([]domain.Animal, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Animal), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnimalRepository) RingNumberExists(ctx context.Context, ringNumber string, excludeAnimalID string) (bool, error) {
	args := m.Called(ctx, ringNumber, excludeAnimalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnimalRepository) FindEligibleMates(ctx context.Context, excludeAnimalID string) ([]domain.Animal, error) {
	args := m.Called(ctx, excludeAnimalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) ListOpenSales(ctx context.Context, filter portsrepo.OpenSalesFilter) ([]domain.Animal, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Animal), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnimalRepository) SaveAnimal(ctx context.Context, animal domain.Animal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockAnimalRepository) UpdateAnimal(ctx context.Context, animal domain.Animal, expectedStatus domain.AnimalStatus) error {
	args := m.Called(ctx, animal, expectedStatus)
	return args.Error(0)
}

func (m *MockAnimalRepository) UpdateAnimalStatus(ctx context.Context, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, animalID, from, to, updatedBy, now)
	return args.Error(0)
}

func (m *MockAnimalRepository) MarkAnimalDeleted(ctx context.Context, animalID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, animalID, updatedBy, now)
	return args.Error(0)
}

func (m *MockAnimalRepository) PairAnimals(ctx context.Context, maleID, femaleID string, pairedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, maleID, femaleID, pairedAt, updatedBy)
	return args.Error(0)
}

func (m *MockAnimalRepository) UnpairAnimals(ctx context.Context, animalIDs []string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, animalIDs, updatedBy, now)
	return args.Error(0)
}

func (m *MockAnimalRepository) FindAnimalByIDForUpdate(ctx context.Context, tx pgx.Tx, animalID string) (*domain.Animal, error) {
	args := m.Called(ctx, tx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) ResetAnimalAfterReturnInTx(ctx context.Context, tx pgx.Tx, animalID string, returnedAt time.Time, reason string, updatedBy string) error {
	args := m.Called(ctx, tx, animalID, returnedAt, reason, updatedBy)
	return args.Error(0)
}

func (m *MockAnimalRepository) UpdateAnimalStatusInTx(ctx context.Context, tx pgx.Tx, animalID string, from, to domain.AnimalStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, animalID, from, to, updatedBy, now)
	return args.Error(0)
}

func (m *MockAnimalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAnimalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAnimalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockSaleHistoryRepository is a mock type for the SaleHistoryRepositoryWithTx interface
type MockSaleHistoryRepository struct {
	mock.Mock
}

func (m *MockSaleHistoryRepository) ListSaleHistoryByAnimal(ctx context.Context, animalID string) ([]domain.SaleHistoryEntry, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleHistoryEntry), args.Error(1)
}

func (m *MockSaleHistoryRepository) ListSaleHistory(ctx context.Context, filter portsrepo.SaleHistoryFilter) ([]domain.SaleHistoryEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.SaleHistoryEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleHistoryRepository) CountSaleHistoryByAnimal(ctx context.Context, animalID string) (int64, error) {
	args := m.Called(ctx, animalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleHistoryRepository) ArchiveReturn(ctx context.Context, animalID string, reason string, returnedAt time.Time, updatedBy string) (*domain.SaleHistoryEntry, error) {
	args := m.Called(ctx, animalID, reason, returnedAt, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleHistoryEntry), args.Error(1)
}

func (m *MockSaleHistoryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSaleHistoryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleHistoryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockFollowUpRepository is a mock type for the FollowUpRepository interface
type MockFollowUpRepository struct {
	mock.Mock
}

func (m *MockFollowUpRepository) SaveFollowUp(ctx context.Context, entry domain.FollowUpEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFollowUpRepository) FindFollowUpByID(ctx context.Context, followUpID string) (*domain.FollowUpEntry, error) {
	args := m.Called(ctx, followUpID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowUpEntry), args.Error(1)
}

func (m *MockFollowUpRepository) ListFollowUpsByAnimal(ctx context.Context, animalID string) ([]domain.FollowUpEntry, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowUpEntry), args.Error(1)
}

func (m *MockFollowUpRepository) UpdateFollowUp(ctx context.Context, entry domain.FollowUpEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFollowUpRepository) DeleteFollowUp(ctx context.Context, followUpID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, followUpID, deletedBy, now)
	return args.Error(0)
}

// MockIncubationRepository is a mock type for the IncubationRepository interface
type MockIncubationRepository struct {
	mock.Mock
}

func (m *MockIncubationRepository) SaveIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIncubationRepository) FindIncubationRecordByID(ctx context.Context, recordID string) (*domain.IncubationRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncubationRecord), args.Error(1)
}

func (m *MockIncubationRepository) ListIncubationRecords(ctx context.Context, filter portsrepo.ListIncubationFilter) ([]domain.IncubationRecord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.IncubationRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockIncubationRepository) UpdateIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIncubationRepository) CloseIncubationRecord(ctx context.Context, record domain.IncubationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockPhotoRepository is a mock type for the PhotoRepository interface
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) CountPhotosByAnimal(ctx context.Context, animalID string) (int64, error) {
	args := m.Called(ctx, animalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) FindFirstPhotoByAnimal(ctx context.Context, animalID string) (*domain.Photo, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListPhotosByAnimal(ctx context.Context, animalID string) ([]domain.Photo, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photo), args.Error(1)
}

// MockStatisticsRepository is a mock type for the StatisticsRepository interface
type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) GetStatisticsOverview(ctx context.Context) (*domain.StatisticsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsOverview), args.Error(1)
}

// MockShareLinkRepository is a mock type for the ShareLinkRepository interface
type MockShareLinkRepository struct {
	mock.Mock
}

func (m *MockShareLinkRepository) SaveShareLink(ctx context.Context, link domain.ShareLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockShareLinkRepository) FindShareLinkByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) ListActiveShareLinksByAnimal(ctx context.Context, animalID string, now time.Time) ([]domain.ShareLink, error) {
	args := m.Called(ctx, animalID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) RevokeShareLink(ctx context.Context, token string, now time.Time) error {
	args := m.Called(ctx, token, now)
	return args.Error(0)
}
