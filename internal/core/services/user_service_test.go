package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/core/services"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/granaflow/granaflow/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockCategoryWriterSvc is a mock type for the CategoryWriterSvc interface
type MockCategoryWriterSvc struct {
	mock.Mock
}

func (m *MockCategoryWriterSvc) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryWriterSvc) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryWriterSvc) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func (m *MockCategoryWriterSvc) SeedDefaultCategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockUserRepository
	mockCategorySvc *MockCategoryWriterSvc
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockCategorySvc = new(MockCategoryWriterSvc)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockCategorySvc)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndSeedsCategories() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "hunter2secret",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "maria" &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("registration", user.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategorySvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SeedFailureIsNotFatal() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "joao", Name: "João", Password: "password123"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "taken", Name: "Taken", Password: "password123"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCategorySvc.AssertNotCalled(suite.T(), "SeedDefaultCategories")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "ana", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "ana").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ana", password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "ana", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "ana").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ana", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserLooksLikeWrongPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyUserHasNoPassword() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Username: "g@example.com", GoogleID: "google-sub"}

	suite.mockRepo.On("FindUserByUsername", ctx, "g@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "g@example.com", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingLink() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), GoogleID: "sub-1"}

	suite.mockRepo.On("FindUserByGoogleID", ctx, "sub-1").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "sub-1", "a@example.com", "A")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksByEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "b@example.com"}

	suite.mockRepo.On("FindUserByGoogleID", ctx, "sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "b@example.com").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == existing.UserID && user.GoogleID == "sub-2"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "sub-2", "b@example.com", "B")

	suite.Require().NoError(err)
	suite.Equal("sub-2", user.GoogleID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_RegistersNewUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByGoogleID", ctx, "sub-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "c@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "c@example.com" && user.GoogleID == "sub-3" && user.CreatedBy == "google"
	})).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "sub-3", "c@example.com", "C")

	suite.Require().NoError(err)
	suite.Equal("c@example.com", user.Username)
	suite.Empty(user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategorySvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUsers() {
	ctx := context.Background()
	name := "New Name"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_ForbiddenForOtherUsers() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
