package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repository lookups for unknown identifiers.
var ErrNotFound = errors.New("record not found")

// NotFoundError names the entity and identifier that could not be resolved.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
