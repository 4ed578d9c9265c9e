package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/core/services"
	"github.com/featherworks/aviary_backend/internal/dto"
)

type FollowUpServiceTestSuite struct {
	suite.Suite
	mockFollowUpRepo *MockFollowUpRepository
	mockAnimalRepo   *MockAnimalRepository
	service          portssvc.FollowUpSvcFacade
}

func (suite *FollowUpServiceTestSuite) SetupTest() {
	suite.mockFollowUpRepo = new(MockFollowUpRepository)
	suite.mockAnimalRepo = new(MockAnimalRepository)
	suite.service = services.NewFollowUpService(suite.mockFollowUpRepo, suite.mockAnimalRepo)
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp_Success() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusSold}
	req := dto.CreateFollowUpRequest{Status: domain.FollowUpCompleted, Notes: "called buyer"}

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockFollowUpRepo.On("SaveFollowUp", ctx, mock.AnythingOfType("domain.FollowUpEntry")).Return(nil).Once()

	entry, err := suite.service.CreateFollowUp(ctx, animalID, req, "user")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.FollowUpID)
	suite.Equal(animalID, entry.AnimalID)
	suite.Equal(domain.FollowUpCompleted, entry.Status)
	// No explicit date defaults to now.
	suite.WithinDuration(time.Now().UTC(), entry.FollowUpDate, time.Second)
	suite.mockFollowUpRepo.AssertExpectations(suite.T())
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp_AnimalNotFound() {
	ctx := context.Background()
	animalID := uuid.NewString()

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateFollowUp(ctx, animalID, dto.CreateFollowUpRequest{Status: domain.FollowUpPending}, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
	suite.mockFollowUpRepo.AssertNotCalled(suite.T(), "SaveFollowUp", mock.Anything, mock.Anything)
}

func (suite *FollowUpServiceTestSuite) TestUpdateFollowUp_AppliesFields() {
	ctx := context.Background()
	followUpID := uuid.NewString()
	existing := &domain.FollowUpEntry{
		FollowUpID:   followUpID,
		AnimalID:     uuid.NewString(),
		FollowUpDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.FollowUpPending,
	}
	newStatus := domain.FollowUpUnreachable

	suite.mockFollowUpRepo.On("FindFollowUpByID", ctx, followUpID).Return(existing, nil).Once()
	suite.mockFollowUpRepo.On("UpdateFollowUp", ctx, mock.MatchedBy(func(e domain.FollowUpEntry) bool {
		return e.Status == domain.FollowUpUnreachable && e.LastUpdatedBy == "user"
	})).Return(nil).Once()

	entry, err := suite.service.UpdateFollowUp(ctx, followUpID, dto.UpdateFollowUpRequest{Status: &newStatus}, "user")

	suite.Require().NoError(err)
	suite.Equal(domain.FollowUpUnreachable, entry.Status)
	suite.mockFollowUpRepo.AssertExpectations(suite.T())
}

func (suite *FollowUpServiceTestSuite) TestDeleteFollowUp_NotFound() {
	ctx := context.Background()
	followUpID := uuid.NewString()

	suite.mockFollowUpRepo.On("FindFollowUpByID", ctx, followUpID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFollowUp(ctx, followUpID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFollowUpRepo.AssertNotCalled(suite.T(), "DeleteFollowUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUpServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FollowUpServiceTestSuite))
}
