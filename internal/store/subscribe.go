package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is the full ordered materialization of a collection at one
// instant. Subscribers always receive the whole snapshot, never a diff.
type Snapshot []Document

// Subscribe registers a callback for a collection. The callback is invoked
// once immediately with the current snapshot, then again after every mutation
// to the collection. Callbacks run synchronously on the mutating goroutine
// and must not panic; the bus has no error isolation between subscribers.
//
// The returned function unregisters the callback; calling it twice is a no-op.
func (s *Store) Subscribe(collection string, callback func(Snapshot)) (func(), error) {
	if _, ok := s.schemas[collection]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	handle := uuid.NewString()

	s.subsMu.Lock()
	if s.subs[collection] == nil {
		s.subs[collection] = make(map[string]func(Snapshot))
	}
	s.subs[collection][handle] = callback
	s.subsMu.Unlock()

	s.mu.Lock()
	snapshot, err := s.list(collection)
	s.mu.Unlock()
	if err == nil {
		callback(cloneSnapshot(snapshot))
	}

	return func() {
		s.subsMu.Lock()
		delete(s.subs[collection], handle)
		s.subsMu.Unlock()
	}, nil
}

func (s *Store) notify(collection string, snapshot []Document) {
	s.subsMu.Lock()
	callbacks := make([]func(Snapshot), 0, len(s.subs[collection]))
	for _, callback := range s.subs[collection] {
		callbacks = append(callbacks, callback)
	}
	s.subsMu.Unlock()

	for _, callback := range callbacks {
		callback(cloneSnapshot(snapshot))
	}
}

// cloneSnapshot gives every subscriber its own copy so one callback mutating
// a document cannot leak into another.
func cloneSnapshot(snapshot []Document) Snapshot {
	cloned := make(Snapshot, len(snapshot))
	for i, document := range snapshot {
		cloned[i] = Document{ID: document.ID, Fields: cloneValue(document.Fields).(map[string]any)}
	}
	return cloned
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, nested := range typed {
			copied[key] = cloneValue(nested)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, nested := range typed {
			copied[i] = cloneValue(nested)
		}
		return copied
	default:
		return value
	}
}
