package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/core/services"
	"github.com/featherworks/aviary_backend/internal/dto"
)

type AnimalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAnimalRepository
	service  portssvc.AnimalSvcFacade
}

func (suite *AnimalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAnimalRepository)
	suite.service = services.NewAnimalService(suite.mockRepo)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *AnimalServiceTestSuite) TestCreateAnimal_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAnimalRequest{
		Species: "African Grey",
		Gender:  domain.GenderMale,
	}

	suite.mockRepo.On("SaveAnimal", ctx, mock.AnythingOfType("domain.Animal")).Return(nil).Once()

	animal, err := suite.service.CreateAnimal(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(animal)
	suite.NotEmpty(animal.AnimalID)
	suite.Equal("African Grey", animal.Species)
	suite.Equal(domain.StatusAvailable, animal.Status)
	suite.Equal(domain.FollowUpPending, animal.FollowUpStatus)
	suite.Equal(creatorUserID, animal.CreatedBy)
	suite.WithinDuration(time.Now().UTC(), animal.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestCreateAnimal_InvertedPriceRange() {
	ctx := context.Background()
	req := dto.CreateAnimalRequest{
		Species:  "Cockatiel",
		Gender:   domain.GenderFemale,
		MinPrice: decPtr("150"),
		MaxPrice: decPtr("100"),
	}

	animal, err := suite.service.CreateAnimal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(animal)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAnimal", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestCreateAnimal_PriceDefaultsToMax() {
	ctx := context.Background()
	req := dto.CreateAnimalRequest{
		Species:  "Cockatiel",
		Gender:   domain.GenderFemale,
		MinPrice: decPtr("100"),
		MaxPrice: decPtr("150"),
	}

	suite.mockRepo.On("SaveAnimal", ctx, mock.AnythingOfType("domain.Animal")).Return(nil).Once()

	animal, err := suite.service.CreateAnimal(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(animal.Price)
	suite.True(animal.Price.Equal(decimal.RequireFromString("150")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestCreateAnimal_ExplicitPriceKept() {
	ctx := context.Background()
	req := dto.CreateAnimalRequest{
		Species:  "Cockatiel",
		Gender:   domain.GenderMale,
		Price:    decPtr("120"),
		MinPrice: decPtr("100"),
		MaxPrice: decPtr("150"),
	}

	suite.mockRepo.On("SaveAnimal", ctx, mock.AnythingOfType("domain.Animal")).Return(nil).Once()

	animal, err := suite.service.CreateAnimal(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(animal.Price)
	suite.True(animal.Price.Equal(decimal.RequireFromString("120")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestCreateAnimal_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	req := dto.CreateAnimalRequest{Species: "Macaw", Gender: domain.GenderMale}

	suite.mockRepo.On("SaveAnimal", ctx, mock.AnythingOfType("domain.Animal")).Return(expectedErr).Once()

	animal, err := suite.service.CreateAnimal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(animal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestListAnimals_NormalizesPaging() {
	ctx := context.Background()
	expected := []domain.Animal{{AnimalID: uuid.NewString(), Species: "Budgerigar"}}

	suite.mockRepo.On("ListAnimals", ctx, mock.MatchedBy(func(f portsrepo.ListAnimalsFilter) bool {
		return f.Limit == 20 && f.Offset == 0
	})).Return(expected, int64(1), nil).Once()

	animals, total, err := suite.service.ListAnimals(ctx, portsrepo.ListAnimalsFilter{Limit: 0, Offset: -5})

	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(animals, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestListAnimals_CapsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListAnimals", ctx, mock.MatchedBy(func(f portsrepo.ListAnimalsFilter) bool {
		return f.Limit == 100
	})).Return([]domain.Animal{}, int64(0), nil).Once()

	_, _, err := suite.service.ListAnimals(ctx, portsrepo.ListAnimalsFilter{Limit: 5000})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimalStatus_MarkBreeding() {
	ctx := context.Background()
	animalID := uuid.NewString()
	updaterUserID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("UpdateAnimalStatus", ctx, animalID, domain.StatusAvailable, domain.StatusBreeding, updaterUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateAnimalStatus(ctx, animalID, domain.StatusBreeding, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBreeding, updated.Status)
	suite.Equal(updaterUserID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimalStatus_MarkAvailableFromBreeding() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusBreeding}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("UpdateAnimalStatus", ctx, animalID, domain.StatusBreeding, domain.StatusAvailable, "user", mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateAnimalStatus(ctx, animalID, domain.StatusAvailable, "user")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAvailable, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimalStatus_LifecycleOwnedStatusRejected() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusBreeding}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()

	updated, err := suite.service.UpdateAnimalStatus(ctx, animalID, domain.StatusSold, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAnimalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimalStatus_IllegalTransition() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusPaired}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()

	updated, err := suite.service.UpdateAnimalStatus(ctx, animalID, domain.StatusBreeding, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAnimalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimal_RederivesPriceFromRange() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{
		AnimalID: animalID,
		Species:  "Lovebird",
		Status:   domain.StatusAvailable,
		Price:    decPtr("80"),
	}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("UpdateAnimal", ctx, mock.AnythingOfType("domain.Animal"), domain.StatusAvailable).Return(nil).Once()

	updated, err := suite.service.UpdateAnimal(ctx, animalID, dto.UpdateAnimalRequest{MaxPrice: decPtr("200")}, "user")

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.Price)
	suite.True(updated.Price.Equal(decimal.RequireFromString("200")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimal_RingNumberReassigned() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Species: "Lovebird", Status: domain.StatusAvailable}
	ring := "NL-2025-0042"

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("RingNumberExists", ctx, ring, animalID).Return(false, nil).Once()
	suite.mockRepo.On("UpdateAnimal", ctx, mock.AnythingOfType("domain.Animal"), domain.StatusAvailable).Return(nil).Once()

	updated, err := suite.service.UpdateAnimal(ctx, animalID, dto.UpdateAnimalRequest{RingNumber: &ring}, "user")

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.RingNumber)
	suite.Equal(ring, *updated.RingNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestUpdateAnimal_DuplicateRingNumberRejected() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Species: "Lovebird", Status: domain.StatusAvailable}
	ring := "NL-2025-0042"

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("RingNumberExists", ctx, ring, animalID).Return(true, nil).Once()

	_, err := suite.service.UpdateAnimal(ctx, animalID, dto.UpdateAnimalRequest{RingNumber: &ring}, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAnimal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestDeleteAnimal_Success() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockRepo.On("MarkAnimalDeleted", ctx, animalID, "user", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteAnimal(ctx, animalID, "user")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestDeleteAnimal_PairedRejected() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusPaired}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()

	err := suite.service.DeleteAnimal(ctx, animalID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkAnimalDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestDeleteAnimal_SoldRejected() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusSold}

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()

	err := suite.service.DeleteAnimal(ctx, animalID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkAnimalDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestDeleteAnimal_NotFound() {
	ctx := context.Background()
	animalID := uuid.NewString()

	suite.mockRepo.On("FindAnimalByID", ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAnimal(ctx, animalID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAnimalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalServiceTestSuite))
}
