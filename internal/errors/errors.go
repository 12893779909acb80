package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrUnsupportedEncoding = errors.New("unsupported object encoding")
	ErrSessionOpen         = errors.New("template edit session already open")
	ErrSessionClosed       = errors.New("template edit session closed")
	ErrElementNotFound     = errors.New("element not found")
	ErrInvalidName         = errors.New("invalid element name")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
