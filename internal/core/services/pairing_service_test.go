package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/core/services"
)

type PairingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAnimalRepository
	service  portssvc.PairingSvcFacade

	maleID   string
	femaleID string
	male     *domain.Animal
	female   *domain.Animal
}

func (suite *PairingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAnimalRepository)
	suite.service = services.NewPairingService(suite.mockRepo)

	suite.maleID = uuid.NewString()
	suite.femaleID = uuid.NewString()
	suite.male = &domain.Animal{
		AnimalID: suite.maleID,
		Species:  "Cockatiel",
		Gender:   domain.GenderMale,
		Status:   domain.StatusBreeding,
	}
	suite.female = &domain.Animal{
		AnimalID: suite.femaleID,
		Species:  "Cockatiel",
		Gender:   domain.GenderFemale,
		Status:   domain.StatusBreeding,
	}
}

func (suite *PairingServiceTestSuite) assertNoPairWrite() {
	suite.mockRepo.AssertNotCalled(suite.T(), "PairAnimals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PairingServiceTestSuite) TestPair_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()
	suite.mockRepo.On("PairAnimals", ctx, suite.maleID, suite.femaleID, mock.AnythingOfType("time.Time"), "user").Return(nil).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)

	// The bond must come back symmetric: each side points at the other and
	// both carry the same paired timestamp.
	suite.Equal(domain.StatusPaired, result.Male.Status)
	suite.Equal(domain.StatusPaired, result.Female.Status)
	suite.Require().NotNil(result.Male.MateID)
	suite.Require().NotNil(result.Female.MateID)
	suite.Equal(suite.femaleID, *result.Male.MateID)
	suite.Equal(suite.maleID, *result.Female.MateID)
	suite.Require().NotNil(result.Male.PairedAt)
	suite.Require().NotNil(result.Female.PairedAt)
	suite.Equal(*result.Male.PairedAt, *result.Female.PairedAt)
	suite.WithinDuration(time.Now().UTC(), *result.Male.PairedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestPair_SelfPairRejected() {
	ctx := context.Background()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.maleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAnimalByID", mock.Anything, mock.Anything)
	suite.assertNoPairWrite()
}

func (suite *PairingServiceTestSuite) TestPair_MaleNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.assertNoPairWrite()
}

func (suite *PairingServiceTestSuite) TestPair_WrongGender() {
	ctx := context.Background()
	suite.male.Gender = domain.GenderFemale

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.assertNoPairWrite()
}

func (suite *PairingServiceTestSuite) TestPair_MaleNotBreeding() {
	ctx := context.Background()
	suite.male.Status = domain.StatusAvailable

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.assertNoPairWrite()
}

func (suite *PairingServiceTestSuite) TestPair_FemaleAlreadyPaired() {
	ctx := context.Background()
	otherID := uuid.NewString()
	suite.female.MateID = &otherID

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.assertNoPairWrite()
}

func (suite *PairingServiceTestSuite) TestPair_RepoConflictPropagates() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()
	suite.mockRepo.On("PairAnimals", ctx, suite.maleID, suite.femaleID, mock.AnythingOfType("time.Time"), "user").Return(apperrors.ErrConflict).Once()

	result, err := suite.service.Pair(ctx, suite.maleID, suite.femaleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestUnpair_Success() {
	ctx := context.Background()
	suite.male.Status = domain.StatusPaired
	suite.male.MateID = &suite.femaleID

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("UnpairAnimals", ctx, []string{suite.maleID, suite.femaleID}, "user", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Unpair(ctx, suite.maleID, "user")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestUnpair_IncubatingAnimal() {
	ctx := context.Background()
	suite.male.Status = domain.StatusIncubating
	suite.male.MateID = &suite.femaleID

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("UnpairAnimals", ctx, []string{suite.maleID, suite.femaleID}, "user", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Unpair(ctx, suite.maleID, "user")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestUnpair_NotPaired() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()

	err := suite.service.Unpair(ctx, suite.maleID, "user")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UnpairAnimals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PairingServiceTestSuite) TestEligibleMates_Success() {
	ctx := context.Background()
	mates := []domain.Animal{*suite.female}

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindEligibleMates", ctx, suite.maleID).Return(mates, nil).Once()

	result, err := suite.service.EligibleMates(ctx, suite.maleID)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal(suite.femaleID, result[0].AnimalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestEligibleMates_FemaleRejected() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()

	result, err := suite.service.EligibleMates(ctx, suite.femaleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEligibleMates", mock.Anything, mock.Anything)
}

func (suite *PairingServiceTestSuite) TestGetMate_Success() {
	ctx := context.Background()
	suite.male.MateID = &suite.femaleID

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(suite.female, nil).Once()

	mate, err := suite.service.GetMate(ctx, suite.maleID)

	suite.Require().NoError(err)
	suite.Require().NotNil(mate)
	suite.Equal(suite.femaleID, mate.AnimalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestGetMate_Unpaired() {
	ctx := context.Background()

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()

	mate, err := suite.service.GetMate(ctx, suite.maleID)

	suite.Require().NoError(err)
	suite.Nil(mate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestGetMate_DanglingReference() {
	ctx := context.Background()
	suite.male.MateID = &suite.femaleID

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(suite.male, nil).Once()
	suite.mockRepo.On("FindAnimalByID", ctx, suite.femaleID).Return(nil, apperrors.ErrNotFound).Once()

	mate, err := suite.service.GetMate(ctx, suite.maleID)

	suite.Require().NoError(err)
	suite.Nil(mate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairingServiceTestSuite) TestGetMate_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAnimalByID", ctx, suite.maleID).Return(nil, expectedErr).Once()

	mate, err := suite.service.GetMate(ctx, suite.maleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(mate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPairingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PairingServiceTestSuite))
}
