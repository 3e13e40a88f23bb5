package portfolio

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Business Rule Errors
	ErrNotFound           = errors.New("portfolio document not found")
	ErrDuplicateProjectID = errors.New("duplicate project id in document")

	// Database Errors
	ErrStorageUnavailable = errors.New("portfolio storage unavailable")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrDuplicateProjectID):
		return 400
	default:
		return 500
	}
}
