package customerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a business failure that maps to a fixed HTTP status.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrInvalidRequestBody  = &Error{Code: http.StatusBadRequest, Message: "Invalid request body"}
	ErrPasswordTooShort    = &Error{Code: http.StatusBadRequest, Message: "Password must be at least 6 characters long"}
	ErrAccessTokenRequired = &Error{Code: http.StatusUnauthorized, Message: "Access token required"}
	ErrInvalidAuthHeader   = &Error{Code: http.StatusUnauthorized, Message: "Invalid authorization header format"}
	ErrInvalidCredentials  = &Error{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrTokenExpired        = &Error{Code: http.StatusForbidden, Message: "Token has expired"}
	ErrTokenInvalid        = &Error{Code: http.StatusForbidden, Message: "Invalid token"}
	ErrUserNotFound        = &Error{Code: http.StatusNotFound, Message: "User not found"}
	ErrEmailAlreadyExists  = &Error{Code: http.StatusConflict, Message: "User with this email already exists"}
)

// ErrConnectivity marks failures to reach the backing store. It is not a
// business error, so it surfaces as a 500 with the wrapped message.
var ErrConnectivity = errors.New("database unreachable")

// GetStatus returns the HTTP status for err; anything that is not an *Error is a 500.
func GetStatus(err error) int {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return http.StatusInternalServerError
}

// GetMessage returns the client-facing message for err.
func GetMessage(err error) string {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}
