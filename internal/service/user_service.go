package service

import (
	"context"

	"users-api/internal/models"
	"users-api/internal/repository"
)

// UserService defines the interface for the users resource
type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	List(ctx context.Context) ([]models.UserResponse, error)
	GetByID(ctx context.Context, id string) (*models.UserResponse, error)
	DeleteByID(ctx context.Context, id string) (*models.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	ids      IDGenerator
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, ids IDGenerator) UserService {
	return &userService{
		userRepo: userRepo,
		ids:      ids,
	}
}

// Create inserts a user without a password
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	user, err := s.userRepo.Create(ctx, s.ids.NewID(), req.Email, req.Name, nil)
	if err != nil {
		return nil, err
	}

	response := models.NewUserResponse(user)
	return &response, nil
}

func (s *userService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.NewUserResponse(user))
	}
	return responses, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := models.NewUserResponse(user)
	return &response, nil
}

func (s *userService) DeleteByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := models.NewUserResponse(user)
	return &response, nil
}
