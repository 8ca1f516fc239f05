// Package errs defines the error taxonomy shared by the matching core and
// its boundaries. Text processing never fails; only missing structural input
// (no skills, no corpus, no model) is reported through these types.
package errs

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a missing or empty required field.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// DataError reports a malformed corpus or a missing required column at load time.
type DataError struct {
	Message string
	Cause   error
}

func (e *DataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("data error: %s", e.Message)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}

// NotReadyError reports a query issued before the vector model is available.
type NotReadyError struct {
	Cause error
}

func (e *NotReadyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job matching models not loaded: %v", e.Cause)
	}
	return "job matching models not loaded"
}

func (e *NotReadyError) Unwrap() error {
	return e.Cause
}

// InvalidInput is a shorthand constructor.
func InvalidInput(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}

// Data is a shorthand constructor.
func Data(message string, cause error) error {
	return &DataError{Message: message, Cause: cause}
}

func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

func IsData(err error) bool {
	var target *DataError
	return errors.As(err, &target)
}

func IsNotReady(err error) bool {
	var target *NotReadyError
	return errors.As(err, &target)
}
