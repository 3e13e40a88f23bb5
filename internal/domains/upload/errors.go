package upload

import "errors"

var (
	// Validation Errors
	ErrNoFile          = errors.New("No file uploaded")
	ErrPayloadTooLarge = errors.New("File exceeds the 5MB limit")
	ErrUnsupportedType = errors.New("Only images/PDFs are allowed")

	// Storage Errors
	ErrStorageFailure = errors.New("failed to store uploaded file")
)

// ToHTTPStatus converts an upload error to an HTTP status code.
// Validation failures surface as 400 with the descriptive message.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoFile),
		errors.Is(err, ErrPayloadTooLarge),
		errors.Is(err, ErrUnsupportedType):
		return 400
	default:
		return 500
	}
}
