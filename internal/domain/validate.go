package domain

import (
	"errors"
	"fmt"
	"strings"

	valid "github.com/asaskevich/govalidator"
	apperrors "github.com/shhac/amfconf/internal/errors"
)

var httpMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS", "TRACE"}

const variablePattern = `^[A-Za-z_][A-Za-z0-9_.\-]*$`

// Validate checks that the request can be turned into a wire request.
// Loading a request never validates it; callers run this right before use.
// All problems are reported, joined into one error.
func (r AMFRequest) Validate() error {
	var errs []error

	if !r.ObjectEncoding.IsSupported() {
		errs = append(errs, apperrors.ValidationError{
			Field:   "objectEncodingVersion",
			Message: fmt.Sprintf("unsupported value %q", r.ObjectEncoding),
		})
	}

	errs = append(errs, r.Endpoint.validate()...)

	if r.ResponseVariable != "" && !valid.Matches(r.ResponseVariable, variablePattern) {
		errs = append(errs, apperrors.ValidationError{
			Field:   "responseVariable",
			Message: fmt.Sprintf("%q is not a valid variable name", r.ResponseVariable),
		})
	}

	return errors.Join(errs...)
}

func (e Endpoint) validate() []error {
	var errs []error

	switch {
	case e.Host == "":
		errs = append(errs, apperrors.ValidationError{Field: "host", Message: "must not be empty"})
	case !isVariableReference(e.Host) && !valid.IsHost(e.Host):
		errs = append(errs, apperrors.ValidationError{
			Field:   "host",
			Message: fmt.Sprintf("%q is not a host name or IP address", e.Host),
		})
	}

	if e.Port != "" && !isVariableReference(e.Port) && !valid.IsPort(e.Port) {
		errs = append(errs, apperrors.ValidationError{
			Field:   "port",
			Message: fmt.Sprintf("%q is not a valid port", e.Port),
		})
	}

	if e.Protocol != "" && !valid.IsIn(strings.ToLower(e.Protocol), "http", "https") {
		errs = append(errs, apperrors.ValidationError{
			Field:   "protocol",
			Message: fmt.Sprintf("%q is not http or https", e.Protocol),
		})
	}

	if e.Method != "" && !valid.IsIn(strings.ToUpper(e.Method), httpMethods...) {
		errs = append(errs, apperrors.ValidationError{
			Field:   "method",
			Message: fmt.Sprintf("unknown HTTP method %q", e.Method),
		})
	}

	for i, arg := range e.Arguments {
		if arg.Name == "" {
			errs = append(errs, apperrors.ValidationError{
				Field:   fmt.Sprintf("arguments[%d]", i),
				Message: "name must not be empty",
			})
		}
	}

	return errs
}

// isVariableReference reports whether s contains a ${...} reference that is
// resolved by the host at run time.
func isVariableReference(s string) bool {
	start := strings.Index(s, "${")
	return start >= 0 && strings.Contains(s[start:], "}")
}
