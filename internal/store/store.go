// Package store implements the reactive document store backing the portal:
// named collections of schema-checked documents, insertion-ordered listings,
// AND-only equality queries, and per-collection snapshot subscriptions.
//
// Every operation waits a fixed artificial latency to model a network
// round-trip, then executes under a single store-wide mutex. Listeners are
// invoked synchronously once a mutation lands. Nothing is transactional
// across documents: get-then-put call sites are last-write-wins.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Document is one record in a collection: a stable id plus opaque fields.
type Document struct {
	ID     string
	Fields map[string]any
}

type Store struct {
	db      *sql.DB
	latency time.Duration
	schemas map[string]map[string]struct{}
	token   atomic.Int64

	mu sync.Mutex

	subsMu sync.Mutex
	subs   map[string]map[string]func(Snapshot)
}

// New builds a store over the given database. schemas maps each collection
// to its allowed field names; writes against other collections or fields are
// rejected. latency applies to every operation and may be zero in tests.
func New(db *sql.DB, latency time.Duration, schemas map[string][]string) *Store {
	compiled := make(map[string]map[string]struct{}, len(schemas))
	for collection, fields := range schemas {
		set := make(map[string]struct{}, len(fields))
		for _, field := range fields {
			set[field] = struct{}{}
		}
		compiled[collection] = set
	}

	s := &Store{
		db:      db,
		latency: latency,
		schemas: compiled,
		subs:    make(map[string]map[string]func(Snapshot)),
	}
	s.token.Store(time.Now().UnixMilli())
	return s
}

// Get fetches one document. Returns ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := s.wait(ctx); err != nil {
		return Document{}, err
	}
	if _, ok := s.schemas[collection]; !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(collection, id)
}

// List returns every document in the collection in insertion order.
func (s *Store) List(ctx context.Context, collection string) ([]Document, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if _, ok := s.schemas[collection]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(collection)
}

// Add inserts a document under a generated id of the form
// {collectionSingular}{token} and returns the id.
func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	if err := s.validate(collection, fields); err != nil {
		return "", err
	}

	id := singular(collection) + fmt.Sprint(s.token.Add(1))

	s.mu.Lock()
	encoded, err := encodeFields(fields)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	_, err = s.db.Exec(
		"INSERT INTO documents (collection, id, fields) VALUES (?, ?, ?)",
		collection, id, encoded,
	)
	if err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("adding document: %w", err)
	}
	snapshot, snapErr := s.list(collection)
	s.mu.Unlock()

	if snapErr == nil {
		s.notify(collection, snapshot)
	}
	return id, nil
}

// Put upserts a document under an explicit id, replacing all fields when the
// id already exists. A replaced document keeps its position in the listing
// order. This is the write path for composite-keyed collections (userId-date).
func (s *Store) Put(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if err := s.validate(collection, fields); err != nil {
		return err
	}

	s.mu.Lock()
	encoded, err := encodeFields(fields)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (collection, id, fields) VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET fields = excluded.fields`,
		collection, id, encoded,
	)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("putting document: %w", err)
	}
	snapshot, snapErr := s.list(collection)
	s.mu.Unlock()

	if snapErr == nil {
		s.notify(collection, snapshot)
	}
	return nil
}

// Update merges partial fields into an existing document. When the id is
// absent the write is silently dropped; callers that need to know use Get
// first. Listeners still observe a snapshot so the contract matches the
// source system.
func (s *Store) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if err := s.validate(collection, partial); err != nil {
		return err
	}

	s.mu.Lock()
	current, err := s.get(collection, id)
	if err == nil {
		for field, value := range partial {
			current.Fields[field] = value
		}
		encoded, encErr := encodeFields(current.Fields)
		if encErr != nil {
			s.mu.Unlock()
			return encErr
		}
		if _, execErr := s.db.Exec(
			"UPDATE documents SET fields = ? WHERE collection = ? AND id = ?",
			encoded, collection, id,
		); execErr != nil {
			s.mu.Unlock()
			return fmt.Errorf("updating document: %w", execErr)
		}
	}
	snapshot, snapErr := s.list(collection)
	s.mu.Unlock()

	if snapErr == nil {
		s.notify(collection, snapshot)
	}
	return nil
}

// Delete removes a document. Deleting an absent id is a no-op.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if _, ok := s.schemas[collection]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	s.mu.Lock()
	_, err := s.db.Exec(
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("deleting document: %w", err)
	}
	snapshot, snapErr := s.list(collection)
	s.mu.Unlock()

	if snapErr == nil {
		s.notify(collection, snapshot)
	}
	return nil
}

func (s *Store) get(collection, id string) (Document, error) {
	var encoded string
	err := s.db.QueryRow(
		"SELECT fields FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&encoded)
	if err == sql.ErrNoRows {
		return Document{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	if err != nil {
		return Document{}, fmt.Errorf("getting document: %w", err)
	}

	fields, err := decodeFields(encoded)
	if err != nil {
		return Document{}, err
	}
	return Document{ID: id, Fields: fields}, nil
}

func (s *Store) list(collection string) ([]Document, error) {
	rows, err := s.db.Query(
		"SELECT id, fields FROM documents WHERE collection = ? ORDER BY seq",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		var id, encoded string
		if err := rows.Scan(&id, &encoded); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		fields, err := decodeFields(encoded)
		if err != nil {
			return nil, err
		}
		documents = append(documents, Document{ID: id, Fields: fields})
	}
	return documents, rows.Err()
}

func (s *Store) validate(collection string, fields map[string]any) error {
	schema, ok := s.schemas[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	for field := range fields {
		if _, ok := schema[field]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, collection, field)
		}
	}
	return nil
}

// wait models the fixed network round-trip every operation pays.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func encodeFields(fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encoding fields: %w", err)
	}
	return string(raw), nil
}

func decodeFields(encoded string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(encoded), &fields); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func singular(collection string) string {
	return strings.TrimSuffix(collection, "s")
}
