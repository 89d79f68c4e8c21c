package service

import (
	"context"
	"errors"
	"fmt"

	"users-api/internal/customerrors"
	"users-api/internal/models"
	"users-api/internal/repository"
)

const minPasswordLength = 6

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	credentials CredentialService
	ids         IDGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, credentials CredentialService, ids IDGenerator) AuthService {
	return &authService{
		userRepo:    userRepo,
		credentials: credentials,
		ids:         ids,
	}
}

// Register creates a user with a password
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, customerrors.ErrPasswordTooShort
	}

	hashedPassword, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, s.ids.NewID(), req.Email, req.Name, &hashedPassword)
	if err != nil {
		return nil, err
	}

	response := models.NewUserResponse(user)
	return &response, nil
}

// Login authenticates a user and returns a token with the user's public fields.
// Unknown email, passwordless account and wrong password all fail the same way.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, customerrors.ErrUserNotFound) {
		return nil, customerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.HasPassword() || !s.credentials.VerifyPassword(req.Password, *user.PasswordHash) {
		return nil, customerrors.ErrInvalidCredentials
	}

	token, err := s.credentials.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token: token,
		User:  models.NewUserResponse(user),
	}, nil
}
