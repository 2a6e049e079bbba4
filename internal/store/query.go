package store

import (
	"context"
	"encoding/json"
)

// Predicate requires exact equality between a document field and a value.
type Predicate struct {
	Field string
	Value any
}

// Where is shorthand for building a predicate.
func Where(field string, value any) Predicate {
	return Predicate{Field: field, Value: value}
}

// Query evaluates predicates against a full collection snapshot. Predicates
// compose with AND only; result order follows insertion order. An empty
// result is not an error.
func (s *Store) Query(ctx context.Context, collection string, predicates ...Predicate) ([]Document, error) {
	documents, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	var matched []Document
	for _, document := range documents {
		if matchesAll(document, predicates) {
			matched = append(matched, document)
		}
	}
	return matched, nil
}

func matchesAll(document Document, predicates []Predicate) bool {
	for _, predicate := range predicates {
		value, ok := document.Fields[predicate.Field]
		if !ok || !equalValues(value, predicate.Value) {
			return false
		}
	}
	return true
}

// equalValues compares a stored field (JSON-decoded) with a caller-supplied
// value, normalizing both through JSON so int/float64 and typed strings
// compare by their wire representation.
func equalValues(stored, queried any) bool {
	left, err := json.Marshal(stored)
	if err != nil {
		return false
	}
	right, err := json.Marshal(queried)
	if err != nil {
		return false
	}
	return string(left) == string(right)
}
