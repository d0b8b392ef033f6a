package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/core/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{
		Name:     " Marta ",
		Email:    "marta@example.com",
		Password: "s3cret",
		Roles:    []string{"admin", "admin", "superadmin"},
	}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, "marta@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "Marta" &&
			u.Email == "marta@example.com" &&
			u.PasswordHash != "s3cret" &&
			utils.CheckPasswordHash("s3cret", u.PasswordHash) &&
			len(u.Roles) == 2 &&
			u.UserID != ""
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}, user.Roles)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Validation() {
	cases := map[string]dto.CreateUserRequest{
		"missing name":     {Email: "a@b.c", Password: "x", Roles: []string{"admin"}},
		"missing email":    {Name: "A", Password: "x", Roles: []string{"admin"}},
		"missing password": {Name: "A", Email: "a@b.c", Roles: []string{"admin"}},
		"missing roles":    {Name: "A", Email: "a@b.c", Password: "x"},
		"unknown role":     {Name: "A", Email: "a@b.c", Password: "x", Roles: []string{"owner"}},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.service.CreateUser(suite.ctx, req)
			requireAppError(suite.T(), err, apperrors.CodeValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_PasswordTooLong() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "a@b.c").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Name: "A", Email: "a@b.c", Password: strings.Repeat("x", 80), Roles: []string{"admin"},
	})

	requireAppError(suite.T(), err, apperrors.CodeValidation)
}

func (suite *UserServiceTestSuite) TestCreateUser_EmailExists() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "taken@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Name: "A", Email: "taken@example.com", Password: "x", Roles: []string{"admin"},
	})

	appErr := requireAppError(suite.T(), err, apperrors.CodeEmailExists)
	suite.Equal(409, appErr.Code)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateUser_ConcurrentInsertConflict() {
	conflict := apperrors.NewConflictError(apperrors.CodeEmailExists, "email already registered")
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "a@b.c").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.Anything).Return(conflict).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Name: "A", Email: "a@b.c", Password: "x", Roles: []string{"admin"},
	})

	requireAppError(suite.T(), err, apperrors.CodeEmailExists)
}

func (suite *UserServiceTestSuite) TestGetUserByID() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "u1").Return(&domain.User{UserID: "u1", Name: "Marta"}, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal("Marta", user.Name)

	_, err = suite.service.GetUserByID(suite.ctx, "nope")
	requireAppError(suite.T(), err, apperrors.CodeUserNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_FiltersByEmail() {
	suite.mockRepo.On("FindUsers", suite.ctx, "a@b.c").Return([]domain.User{{UserID: "u1"}}, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx, "  a@b.c ")

	suite.Require().NoError(err)
	suite.Len(users, 1)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("correct")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "a@b.c", PasswordHash: hash, Roles: []domain.Role{domain.RoleAdmin}}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, "a@b.c").Return(stored, nil)
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "ghost@b.c").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "a@b.c", "correct")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "a@b.c", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ghost@b.c", "correct")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_StorageError() {
	dbErr := errors.New("db down")
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "a@b.c").Return(nil, dbErr).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "a@b.c", "x")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_CreatesSuperadminWhenEmpty() {
	suite.mockRepo.On("FindUsers", suite.ctx, "").Return([]domain.User{}, nil).Once()
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "root@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "Administrador" && u.CanManageUsers()
	})).Return(nil).Once()

	err := suite.service.EnsureBootstrapAdmin(suite.ctx, "", "root@example.com", "pw")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_Skips() {
	suite.Require().NoError(suite.service.EnsureBootstrapAdmin(suite.ctx, "Root", "", "pw"))

	suite.mockRepo.On("FindUsers", suite.ctx, "").Return([]domain.User{{UserID: "u1"}}, nil).Once()
	suite.Require().NoError(suite.service.EnsureBootstrapAdmin(suite.ctx, "Root", "root@example.com", "pw"))

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}
