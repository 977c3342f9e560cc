package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidIdentifier is returned for a malformed record reference.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrNotFound is returned when a well-formed reference has no record.
	ErrNotFound = errors.New("not found")
	// ErrValidationFailed is returned for schema or type violations.
	ErrValidationFailed = errors.New("validation failed")
	// ErrEmptyUpdate is returned when an update carries no recognized field.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrInvalidStatus is returned for a stored or submitted status outside the enum.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError carries per-field reasons. It matches ErrValidationFailed
// with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidationFailed) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// MigrationItemFailure is an isolated per-item error in a reconciliation
// batch. The batch logs it, counts it and moves on.
type MigrationItemFailure struct {
	ItemID string
	Err    error
}

func (e *MigrationItemFailure) Error() string {
	return fmt.Sprintf("migrate item %s: %v", e.ItemID, e.Err)
}

func (e *MigrationItemFailure) Unwrap() error {
	return e.Err
}
