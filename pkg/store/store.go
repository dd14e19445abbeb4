// Package store is an in-memory persistence collaborator for records
// carrying markup fields. Save runs every field's validation and render
// before any mutation happens, then commits the rendered caches and the
// flat column map together. It stands in for whatever database-backed layer
// an application brings; the contract records rely on is the two-phase save.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/goliatone/go-markupfield/pkg/field"
)

// ErrNotFound is returned when a record key has no stored row.
var ErrNotFound = errors.New("store: record not found")

// Record is anything that persists markup fields through the store.
type Record interface {
	// Key identifies the record; empty means the store assigns one on save.
	Key() string
	// SetKey receives the store-assigned key.
	SetKey(string)
	// Bindings lists the record's markup fields with their storage slots.
	Bindings() []field.Binding
}

// Option configures a store.
type Option func(*Store)

// WithLogger attaches a structured logger; saves and deletes are logged at
// info level.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Store keeps persisted rows keyed by record key. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	rows map[string]map[string]string
	log  *log.Logger
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		rows: make(map[string]map[string]string),
		log:  log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Save persists a record. All fields are validated, then rendered against
// slot copies, before anything is mutated, so an invalid markup type or a
// renderer failure on any field aborts the save with every slot untouched.
// On success each field's rendered cache is refreshed and the row holds the
// three columns per field. Returns the record key, assigning a fresh one
// when the record has none.
func (s *Store) Save(ctx context.Context, rec Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	bindings := rec.Bindings()
	for _, b := range bindings {
		if err := b.Field.Validate(b.Slots); err != nil {
			return "", err
		}
	}

	// Render against slot copies first so a renderer failure on any field
	// leaves every field's cache at its pre-call value.
	staged := make([]string, len(bindings))
	for i, b := range bindings {
		scratch := *b.Slots
		if _, err := b.Field.PreSave(&scratch); err != nil {
			return "", fmt.Errorf("store: save field %q: %w", b.Field.Name(), err)
		}
		staged[i] = scratch.Rendered
	}

	row := make(map[string]string, len(bindings)*3)
	for i, b := range bindings {
		b.Slots.Rendered = staged[i]

		raw := ""
		if b.Slots.Raw != nil {
			raw = *b.Slots.Raw
		}
		row[b.Field.Column()] = raw
		row[b.Field.MarkupTypeColumn()] = *b.Slots.MarkupType
		row[b.Field.RenderedColumn()] = b.Slots.Rendered
	}

	key := rec.Key()
	if key == "" {
		key = uuid.NewString()
		rec.SetKey(key)
	}

	s.mu.Lock()
	s.rows[key] = row
	s.mu.Unlock()

	s.log.Info("record saved", "key", key, "fields", len(bindings))
	return key, nil
}

// Load populates a record's slots from its stored row.
func (s *Store) Load(key string, rec Record) error {
	s.mu.RLock()
	row, ok := s.rows[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("store: load %q: %w", key, ErrNotFound)
	}

	for _, b := range rec.Bindings() {
		raw := row[b.Field.Column()]
		markupType := row[b.Field.MarkupTypeColumn()]

		b.Slots.Raw = &raw
		b.Slots.MarkupType = &markupType
		b.Slots.Rendered = row[b.Field.RenderedColumn()]
	}
	rec.SetKey(key)
	return nil
}

// Row returns a copy of the stored columns for a key.
func (s *Store) Row(key string) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(row))
	for column, value := range row {
		out[column] = value
	}
	return out, true
}

// Delete removes a stored row, reporting whether it existed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	_, ok := s.rows[key]
	delete(s.rows, key)
	s.mu.Unlock()

	if ok {
		s.log.Info("record deleted", "key", key)
	}
	return ok
}

// Keys returns the sorted keys of all stored rows.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.rows))
	for key := range s.rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
