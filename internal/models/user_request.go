package models

// CreateUserRequest represents the request body for creating a user without a password
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}
