package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports required lead fields that were missing or empty.
// It is returned before any request is made.
type ValidationError struct {
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	return "gateway: missing required field(s): " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return e.err }

// StatusError is a non-2xx answer from the lead endpoint
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway: lead endpoint returned status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// NetworkError is a transport failure, including timeouts and cancellation
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "gateway: lead request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields, err: err}
}
