package ordering

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrSubmissionInProgress = errors.New("order submission already in progress")
)

const (
	fallbackMessage     = "Failed to place order. Please try again."
	loginFailedMessage  = "Login failed. Please try again."
	signupFailedMessage = "Sign up failed. Please try again."
)

// AuthenticationError is returned when the backend rejects the bearer token.
// It matches ErrNotAuthenticated with errors.Is.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return ErrNotAuthenticated.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Message)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrNotAuthenticated
}

// ServerError is any response other than the expected success status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

// NetworkError wraps a request that never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Message turns an error from this package into the text shown to the user.
func Message(err error) string {
	var (
		serverErr *ServerError
		authErr   *AuthenticationError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty. Add items to place an order."
	case errors.As(err, &authErr) && authErr.Message != "":
		return authErr.Message
	case errors.Is(err, ErrNotAuthenticated):
		return "You must be logged in to place an order."
	case errors.Is(err, ErrSubmissionInProgress):
		return "Your order is already being placed."
	case errors.As(err, &serverErr) && serverErr.Message != "":
		return serverErr.Message
	default:
		return fallbackMessage
	}
}
