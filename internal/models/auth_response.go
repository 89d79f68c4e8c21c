package models

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string       `json:"token"` // JWT token
	User  UserResponse `json:"user"`
}
