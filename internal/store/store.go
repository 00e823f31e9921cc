// Package store holds the canonical client-side state for one entity
// type and mediates every mutation through the API client. Stores are
// constructed explicitly in main and injected into handlers; there is
// no package-level state.
package store

import (
	"context"
	"sync"
)

// Identifiable is any record with a server-assigned numeric id.
type Identifiable interface {
	EntityID() int64
}

// Client is the API surface a store drives. Both entity clients in
// internal/apiclient satisfy it.
type Client[E Identifiable, P any] interface {
	ListAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, payload P) (E, error)
	Update(ctx context.Context, id int64, payload P) (E, error)
	Delete(ctx context.Context, id int64) error
}

// Store owns items (in server response order), the current record, and
// the loading/error flags for one entity type. Any number of handlers
// may read it concurrently; all mutation goes through the actions
// below.
//
// Overlapping calls are not deduplicated or cancelled: whichever
// response resolves last wins. That is a documented limitation, not a
// guarantee.
type Store[E Identifiable, P any] struct {
	client Client[E, P]

	mu      sync.Mutex
	items   []E
	current *E
	loading bool
	errMsg  string
}

func New[E Identifiable, P any](client Client[E, P]) *Store[E, P] {
	return &Store[E, P]{client: client}
}

// begin brackets the start of every action: loading on, error cleared.
func (s *Store[E, P]) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *Store[E, P]) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
}

// FetchAll replaces items wholesale with the server's list. It never
// returns an error: list refresh runs on every list page load and the
// failure is rendered inline from Err instead.
func (s *Store[E, P]) FetchAll(ctx context.Context) {
	s.begin()
	items, err := s.client.ListAll(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if items == nil {
		items = []E{}
	}
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

// FetchOne loads a single record into current and returns it. On
// failure the error is both recorded and returned so form flows can
// react; current is left untouched.
func (s *Store[E, P]) FetchOne(ctx context.Context, id int64) (E, error) {
	s.begin()
	e, err := s.client.GetByID(ctx, id)
	if err != nil {
		s.fail(err)
		var zero E
		return zero, err
	}
	s.mu.Lock()
	s.current = &e
	s.loading = false
	s.mu.Unlock()
	return e, nil
}

// CreateOne appends the server-returned record to the end of items.
func (s *Store[E, P]) CreateOne(ctx context.Context, payload P) (E, error) {
	s.begin()
	e, err := s.client.Create(ctx, payload)
	if err != nil {
		s.fail(err)
		var zero E
		return zero, err
	}
	s.mu.Lock()
	s.items = append(s.items, e)
	s.loading = false
	s.mu.Unlock()
	return e, nil
}

// UpdateOne replaces the matching item in items and current with the
// server-returned record. Non-matching items keep their identity.
func (s *Store[E, P]) UpdateOne(ctx context.Context, id int64, payload P) (E, error) {
	s.begin()
	e, err := s.client.Update(ctx, id, payload)
	if err != nil {
		s.fail(err)
		var zero E
		return zero, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = e
		}
	}
	s.current = &e
	s.loading = false
	s.mu.Unlock()
	return e, nil
}

// DeleteOne removes the matching item from items. Deleting an id that
// is not present leaves items unchanged.
func (s *Store[E, P]) DeleteOne(ctx context.Context, id int64) error {
	s.begin()
	if err := s.client.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *Store[E, P]) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *Store[E, P]) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Items returns a snapshot copy of the collection in server order.
func (s *Store[E, P]) Items() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Current returns the current record, if any.
func (s *Store[E, P]) Current() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		var zero E
		return zero, false
	}
	return *s.current, true
}

func (s *Store[E, P]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, or "" when the last
// action succeeded.
func (s *Store[E, P]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
