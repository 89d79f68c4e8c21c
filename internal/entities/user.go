package entities

import "time"

// User represents a row of the users table
type User struct {
	ID           string    `json:"id"` // user_<unix timestamp>
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash *string   `json:"-"` // nil for users created without a password
	CreatedAt    time.Time `json:"created_at"`
}

// HasPassword reports whether the user can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
