package services_test

import (
	"context"
	"testing"

	"github.com/blogrest/blog_backend/internal/apperrors"
	"github.com/blogrest/blog_backend/internal/core/domain"
	"github.com/blogrest/blog_backend/internal/core/services"
	"github.com/blogrest/blog_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestGetUserByID() {
	user := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@x.com"}
	s.mockRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)

	svc := services.NewUserService(s.mockRepo)
	got, err := svc.GetUserByID(s.ctx, "user-1")

	s.Require().NoError(err)
	s.Equal("alice", got.Username)
}

func (s *UserServiceTestSuite) TestGetUserByID_NotFound() {
	s.mockRepo.On("FindUserByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	svc := services.NewUserService(s.mockRepo)
	_, err := svc.GetUserByID(s.ctx, "ghost")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestListUsers() {
	users := []domain.User{
		{UserID: "user-1", Username: "alice"},
		{UserID: "user-2", Username: "bob"},
	}
	s.mockRepo.On("FindUsers", s.ctx, 20, 0).Return(users, nil)

	svc := services.NewUserService(s.mockRepo)
	got, err := svc.ListUsers(s.ctx, 20, 0)

	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *UserServiceTestSuite) TestUpdateUser_UsernameIsImmutable() {
	newName := "alice2"

	svc := services.NewUserService(s.mockRepo)
	_, err := svc.UpdateUser(s.ctx, "user-1", dto.UpdateUserRequest{Username: &newName})

	s.ErrorIs(err, apperrors.ErrImmutableField)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateUser")
}

func (s *UserServiceTestSuite) TestUpdateUser_EmailIsImmutable() {
	newEmail := "alice2@x.com"

	svc := services.NewUserService(s.mockRepo)
	_, err := svc.UpdateUser(s.ctx, "user-1", dto.UpdateUserRequest{Email: &newEmail})

	s.ErrorIs(err, apperrors.ErrImmutableField)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateUser")
}

func (s *UserServiceTestSuite) TestUpdateUser_NoopTouchesTimestamp() {
	user := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@x.com"}
	s.mockRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.mockRepo.On("UpdateUser", s.ctx, mock.AnythingOfType("domain.User")).Return(nil)

	svc := services.NewUserService(s.mockRepo)
	got, err := svc.UpdateUser(s.ctx, "user-1", dto.UpdateUserRequest{})

	s.Require().NoError(err)
	s.False(got.UpdatedAt.IsZero())
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	s.mockRepo.On("DeleteUser", s.ctx, "user-1").Return(nil)

	svc := services.NewUserService(s.mockRepo)
	err := svc.DeleteUser(s.ctx, "user-1")

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}
