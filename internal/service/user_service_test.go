package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"users-api/internal/customerrors"
	"users-api/internal/entities"
	"users-api/internal/models"
	"users-api/internal/repository/mocks"
)

func setupUserService(t *testing.T) (*mocks.MockUserRepository, UserService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return repo, NewUserService(repo, fixedIDs(testID))
}

func TestCreateStoresNoPassword(t *testing.T) {
	repo, svc := setupUserService(t)
	repo.EXPECT().
		Create(gomock.Any(), testID, testEmail, testName, gomock.Nil()).
		Return(&entities.User{ID: testID, Email: testEmail, Name: testName, CreatedAt: testCreatedAt}, nil)

	user, err := svc.Create(context.Background(), &models.CreateUserRequest{Email: testEmail, Name: testName})

	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{
		ID: testID, Email: testEmail, Name: testName, CreatedAt: "2024-01-01T00:00:00.5Z",
	}, *user)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, svc := setupUserService(t)
	repo.EXPECT().Create(gomock.Any(), testID, testEmail, testName, gomock.Nil()).
		Return(nil, customerrors.ErrEmailAlreadyExists)

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Email: testEmail, Name: testName})

	assert.ErrorIs(t, err, customerrors.ErrEmailAlreadyExists)
}

func TestListKeepsRepositoryOrder(t *testing.T) {
	repo, svc := setupUserService(t)
	hash := "hash"
	repo.EXPECT().List(gomock.Any()).Return([]*entities.User{
		{ID: "user_2", Email: "b@x.com", Name: "Bob", CreatedAt: testCreatedAt.Add(time.Hour)},
		{ID: "user_1", Email: testEmail, Name: testName, PasswordHash: &hash, CreatedAt: testCreatedAt},
	}, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user_2", users[0].ID)
	assert.Equal(t, "user_1", users[1].ID)
}

func TestListEmpty(t *testing.T) {
	repo, svc := setupUserService(t)
	repo.EXPECT().List(gomock.Any()).Return([]*entities.User{}, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetByID(t *testing.T) {
	repo, svc := setupUserService(t)
	repo.EXPECT().FindByID(gomock.Any(), testID).
		Return(&entities.User{ID: testID, Email: testEmail, Name: testName, CreatedAt: testCreatedAt}, nil)
	repo.EXPECT().FindByID(gomock.Any(), "user_missing").
		Return(nil, customerrors.ErrUserNotFound)

	user, err := svc.GetByID(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, testEmail, user.Email)

	_, err = svc.GetByID(context.Background(), "user_missing")
	assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
}

func TestDeleteByID(t *testing.T) {
	repo, svc := setupUserService(t)
	repo.EXPECT().DeleteByID(gomock.Any(), testID).
		Return(&entities.User{ID: testID, Email: testEmail, Name: testName, CreatedAt: testCreatedAt}, nil)
	repo.EXPECT().DeleteByID(gomock.Any(), "user_missing").
		Return(nil, customerrors.ErrUserNotFound)

	user, err := svc.DeleteByID(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, testID, user.ID)

	_, err = svc.DeleteByID(context.Background(), "user_missing")
	assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
}
