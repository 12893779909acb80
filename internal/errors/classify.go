package errors

import (
	"errors"
	"strings"
)

// ErrorSeverity indicates how an error should be reported.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Result is usable but suspect
	SeverityError                        // Operation failed, can retry
)

// UserError wraps an error with user-facing presentation metadata.
type UserError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions
	Details  string   // Technical details
}

func (e UserError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UserError) Unwrap() error {
	return e.Err
}

// String renders the error as a short multi-line report.
func (e UserError) String() string {
	var b strings.Builder
	b.WriteString(e.Title)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, r := range e.Recovery {
		b.WriteString("\n  - ")
		b.WriteString(r)
	}
	if e.Details != "" && e.Details != e.Message {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	return b.String()
}

// ClassifyError converts a standard error into a UserError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UserError {
	if err == nil {
		return nil
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr
	}

	switch {
	case errors.Is(err, ErrElementNotFound):
		return &UserError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Element Not Found",
			Message:  "No stored AMF request has that name.",
			Recovery: []string{"Run 'amfconf list' to see stored requests"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrInvalidName):
		return &UserError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid Name",
			Message:  "Element names must be non-empty and contain no path separators.",
			Recovery: []string{"Choose a simple name such as 'login-request'"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrUnsupportedEncoding):
		return &UserError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Unsupported Encoding",
			Message:  "The object encoding version is not one of the supported values.",
			Recovery: []string{"Use AMF3"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrSessionOpen):
		return &UserError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Editor Busy",
			Message:  "The template is already being edited.",
			Recovery: []string{"Save or close the open editor first"},
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UserError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  err.Error(),
		}
	}

	return &UserError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
