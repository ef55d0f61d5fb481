package resume

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is what the upload endpoint stashes for a later interview start: the
// analysis plus the question sets already selected per language.
type Record struct {
	ID        uuid.UUID
	Analysis  Analysis
	Questions map[string][]string
	CreatedAt time.Time
}

// Store keeps analyses in process memory until the respondent starts the
// interview. Entries expire after the configured TTL; nothing is ever written
// to durable storage.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]Record
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[uuid.UUID]Record),
		now:     time.Now,
	}
}

// Put stores the record under a fresh id and returns it.
func (s *Store) Put(analysis Analysis, questions map[string][]string) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = Record{
		ID:        id,
		Analysis:  analysis,
		Questions: questions,
		CreatedAt: s.now(),
	}
	return id
}

// Get returns the record if present and not expired.
func (s *Store) Get(id uuid.UUID) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.entries[id]
	if !ok {
		return Record{}, false
	}
	if s.expired(rec) {
		delete(s.entries, id)
		return Record{}, false
	}
	return rec, true
}

// Delete removes the record; missing ids are ignored.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops expired entries every interval until the context is cancelled.
func (s *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reap()
		}
	}
}

func (s *Store) reap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.entries {
		if s.expired(rec) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) expired(rec Record) bool {
	return s.ttl > 0 && s.now().Sub(rec.CreatedAt) > s.ttl
}
