package apierrors

import "fmt"

// Stable error codes returned in the response envelope. Underlying store
// error detail is logged server-side and never leaves the process.
const (
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrUserNotFound     = "USER_NOT_FOUND"
	ErrListingNotFound  = "LISTING_NOT_FOUND"
	ErrRateLimited      = "RATE_LIMITED"
	ErrInternal         = "INTERNAL_SERVER_ERROR"
)

// APIError carries an HTTP status and a stable error code to the
// response boundary.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Code)
}

func NewAPIError(status int, code string) *APIError {
	return &APIError{Status: status, Code: code}
}
