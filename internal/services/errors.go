package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ValidationError reports caller input that is missing or malformed.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StoreError wraps a connectivity or query failure from the database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Code returns the SQLSTATE name for postgres errors, empty otherwise.
func (e *StoreError) Code() string {
	var pqErr *pq.Error
	if errors.As(e.Err, &pqErr) {
		return pqErr.Code.Name()
	}
	return ""
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
