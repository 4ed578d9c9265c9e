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
)

type ShareLinkServiceTestSuite struct {
	suite.Suite
	mockShareRepo  *MockShareLinkRepository
	mockAnimalRepo *MockAnimalRepository
	mockPhotoRepo  *MockPhotoRepository
	service        portssvc.ShareSvcFacade
}

func (suite *ShareLinkServiceTestSuite) SetupTest() {
	suite.mockShareRepo = new(MockShareLinkRepository)
	suite.mockAnimalRepo = new(MockAnimalRepository)
	suite.mockPhotoRepo = new(MockPhotoRepository)
	suite.service = services.NewShareLinkService(suite.mockShareRepo, suite.mockAnimalRepo, suite.mockPhotoRepo)
}

func (suite *ShareLinkServiceTestSuite) TestGenerateShareLink_Success() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockShareRepo.On("SaveShareLink", ctx, mock.AnythingOfType("domain.ShareLink")).Return(nil).Once()

	link, err := suite.service.GenerateShareLink(ctx, animalID, "keeper1")

	suite.Require().NoError(err)
	suite.Require().NotNil(link)
	suite.Equal(animalID, link.AnimalID)
	suite.Equal("keeper1", link.CreatedBy)
	// 16 random bytes encode to 22 URL-safe characters.
	suite.Len(link.Token, 22)
	suite.Nil(link.RevokedAt)
	suite.WithinDuration(time.Now().UTC().Add(7*24*time.Hour), link.ExpiresAt, time.Second)
	suite.mockShareRepo.AssertExpectations(suite.T())
}

func (suite *ShareLinkServiceTestSuite) TestGenerateShareLink_RetriesOnTokenCollision() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockShareRepo.On("SaveShareLink", ctx, mock.AnythingOfType("domain.ShareLink")).Return(apperrors.ErrDuplicate).Once()
	suite.mockShareRepo.On("SaveShareLink", ctx, mock.AnythingOfType("domain.ShareLink")).Return(nil).Once()

	link, err := suite.service.GenerateShareLink(ctx, animalID, "keeper1")

	suite.Require().NoError(err)
	suite.Require().NotNil(link)
	suite.mockShareRepo.AssertNumberOfCalls(suite.T(), "SaveShareLink", 2)
}

func (suite *ShareLinkServiceTestSuite) TestGenerateShareLink_GivesUpAfterCollisions() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockShareRepo.On("SaveShareLink", ctx, mock.AnythingOfType("domain.ShareLink")).Return(apperrors.ErrDuplicate).Times(3)

	link, err := suite.service.GenerateShareLink(ctx, animalID, "keeper1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(link)
	suite.mockShareRepo.AssertNumberOfCalls(suite.T(), "SaveShareLink", 3)
}

func (suite *ShareLinkServiceTestSuite) TestGenerateShareLink_AnimalNotFound() {
	ctx := context.Background()
	animalID := uuid.NewString()

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	link, err := suite.service.GenerateShareLink(ctx, animalID, "keeper1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(link)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "SaveShareLink", mock.Anything, mock.Anything)
}

func (suite *ShareLinkServiceTestSuite) TestResolveShareLink_Valid() {
	ctx := context.Background()
	animalID := uuid.NewString()
	token := "fixed-test-token-000000"
	link := &domain.ShareLink{
		LinkID:    uuid.NewString(),
		AnimalID:  animalID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
	animal := &domain.Animal{AnimalID: animalID, Species: "Cockatiel", Status: domain.StatusAvailable}
	photos := []domain.Photo{{PhotoID: uuid.NewString(), AnimalID: animalID, FilePath: "/uploads/" + animalID + "/lead.jpg", FileName: "lead.jpg"}}

	suite.mockShareRepo.On("FindShareLinkByToken", ctx, token).Return(link, nil).Once()
	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockPhotoRepo.On("ListPhotosByAnimal", ctx, animalID).Return(photos, nil).Once()

	view, err := suite.service.ResolveShareLink(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareValid, view.Resolution)
	suite.Require().NotNil(view.Animal)
	suite.Equal("Cockatiel", view.Animal.Species)
	suite.Len(view.Photos, 1)
}

func (suite *ShareLinkServiceTestSuite) TestResolveShareLink_UnknownToken() {
	ctx := context.Background()

	suite.mockShareRepo.On("FindShareLinkByToken", ctx, "no-such-token").Return(nil, apperrors.ErrNotFound).Once()

	view, err := suite.service.ResolveShareLink(ctx, "no-such-token")

	suite.Require().NoError(err)
	suite.Equal(domain.ShareInvalid, view.Resolution)
	suite.Nil(view.Animal)
	suite.mockAnimalRepo.AssertNotCalled(suite.T(), "FindAnimalByID", mock.Anything, mock.Anything)
}

func (suite *ShareLinkServiceTestSuite) TestResolveShareLink_Revoked() {
	ctx := context.Background()
	token := "revoked-token"
	revokedAt := time.Now().UTC().Add(-time.Hour)
	link := &domain.ShareLink{
		LinkID:    uuid.NewString(),
		AnimalID:  uuid.NewString(),
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		RevokedAt: &revokedAt,
	}

	suite.mockShareRepo.On("FindShareLinkByToken", ctx, token).Return(link, nil).Once()

	view, err := suite.service.ResolveShareLink(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareInvalid, view.Resolution)
	suite.mockAnimalRepo.AssertNotCalled(suite.T(), "FindAnimalByID", mock.Anything, mock.Anything)
}

func (suite *ShareLinkServiceTestSuite) TestResolveShareLink_Expired() {
	ctx := context.Background()
	token := "stale-token"
	link := &domain.ShareLink{
		LinkID:    uuid.NewString(),
		AnimalID:  uuid.NewString(),
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}

	suite.mockShareRepo.On("FindShareLinkByToken", ctx, token).Return(link, nil).Once()

	view, err := suite.service.ResolveShareLink(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareExpired, view.Resolution)
	suite.Nil(view.Animal)
}

func (suite *ShareLinkServiceTestSuite) TestResolveShareLink_AnimalDeleted() {
	ctx := context.Background()
	animalID := uuid.NewString()
	token := "orphaned-token"
	link := &domain.ShareLink{
		LinkID:    uuid.NewString(),
		AnimalID:  animalID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}

	suite.mockShareRepo.On("FindShareLinkByToken", ctx, token).Return(link, nil).Once()
	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	view, err := suite.service.ResolveShareLink(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareInvalid, view.Resolution)
}

func (suite *ShareLinkServiceTestSuite) TestListShareLinks_AnimalNotFound() {
	ctx := context.Background()
	animalID := uuid.NewString()

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	links, err := suite.service.ListShareLinks(ctx, animalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(links)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "ListActiveShareLinksByAnimal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShareLinkServiceTestSuite) TestListShareLinks_Success() {
	ctx := context.Background()
	animalID := uuid.NewString()
	animal := &domain.Animal{AnimalID: animalID, Status: domain.StatusAvailable}
	links := []domain.ShareLink{{LinkID: uuid.NewString(), AnimalID: animalID, Token: "tok", ExpiresAt: time.Now().UTC().Add(time.Hour)}}

	suite.mockAnimalRepo.On("FindAnimalByID", ctx, animalID).Return(animal, nil).Once()
	suite.mockShareRepo.On("ListActiveShareLinksByAnimal", ctx, animalID, mock.AnythingOfType("time.Time")).Return(links, nil).Once()

	got, err := suite.service.ListShareLinks(ctx, animalID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockShareRepo.AssertExpectations(suite.T())
}

func (suite *ShareLinkServiceTestSuite) TestRevokeShareLink_NotFound() {
	ctx := context.Background()

	suite.mockShareRepo.On("RevokeShareLink", ctx, "gone-token", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.RevokeShareLink(ctx, "gone-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestShareLinkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShareLinkServiceTestSuite))
}
