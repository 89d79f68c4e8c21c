package models

import (
	"time"

	"users-api/internal/entities"
)

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"` // ISO-8601
}

// DeleteUserResponse represents the response after deleting a user
type DeleteUserResponse struct {
	Detail string       `json:"detail"`
	User   UserResponse `json:"user"`
}

// HealthResponse is returned by GET /
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewUserResponse maps a stored user to its response record.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: FormatTimestamp(user.CreatedAt),
	}
}

// FormatTimestamp renders t as an ISO-8601 string in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
