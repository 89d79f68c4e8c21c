package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"users-api/internal/customerrors"
	"users-api/internal/jwt"
)

const bearerPrefix = "Bearer "

// CredentialService hashes passwords and issues/validates bearer tokens
type CredentialService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(userID string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
	Authenticate(authorizationHeader string) (*jwt.Claims, error)
}

type credentialService struct {
	jwtService *jwt.JWTService
	cost       int
}

// NewCredentialService creates a credential service signing with jwtService
func NewCredentialService(jwtService *jwt.JWTService) CredentialService {
	return &credentialService{
		jwtService: jwtService,
		cost:       bcrypt.DefaultCost,
	}
}

// HashPassword salts and hashes plain; every call uses a fresh salt
func (s *credentialService) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *credentialService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *credentialService) IssueToken(userID string) (string, error) {
	return s.jwtService.GenerateToken(userID)
}

func (s *credentialService) ValidateToken(token string) (*jwt.Claims, error) {
	return s.jwtService.ValidateToken(token)
}

// Authenticate checks an Authorization header value of the form "Bearer <token>"
func (s *credentialService) Authenticate(authorizationHeader string) (*jwt.Claims, error) {
	if authorizationHeader == "" {
		return nil, customerrors.ErrAccessTokenRequired
	}
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, customerrors.ErrInvalidAuthHeader
	}

	return s.ValidateToken(strings.TrimPrefix(authorizationHeader, bearerPrefix))
}
