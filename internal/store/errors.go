// Package store is the persistence core: entity stores over gorm plus the
// role-qualified client/vendor relationship manager. All failures surface as
// one of the three typed errors below so handlers can map them to status
// codes without string matching.
package store

import "fmt"

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced id does not resolve.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError reports a uniqueness or referential-integrity violation,
// e.g. a duplicate role link or a delete blocked by dependents.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func notFoundErr(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func conflictErr(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
