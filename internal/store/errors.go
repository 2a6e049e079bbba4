package store

import "errors"

var (
	// ErrNotFound is returned by Get when no document has the given id.
	ErrNotFound = errors.New("document not found")

	// ErrUnknownCollection is returned for operations against a collection
	// that was never registered with a schema.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownField is returned when a write carries a field outside the
	// collection's schema.
	ErrUnknownField = errors.New("unknown field")
)
