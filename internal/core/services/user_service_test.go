package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "s3cret-password",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ada@example.com" && u.AuthProvider == domain.ProviderLocal && u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("ada@example.com", user.Email)
	suite.NotEqual("s3cret-password", user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "ada@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       "user-1",
		Email:        "ada@example.com",
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "ada@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyAccountRejected() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		Email:        "ada@example.com",
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ada@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingUser() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "ada@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{Email: "Ada@example.com", Name: "Ada"})

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstLogin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ada@example.com" && u.AuthProvider == domain.ProviderGoogle && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{Email: "ada@example.com", Name: "Ada"})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
