package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/bookgrid/internal/books"
)

// Snapshot represents the latest dataset load available to the UI.
type Snapshot struct {
	Books       []books.Book
	Loaded      bool // at least one fetch succeeded
	LastUpdated time.Time
	LastError   error
	Attempts    int
	Failures    int // consecutive failed fetches
}

// Failed reports whether the last fetch errored and nothing has ever loaded.
// The UI shows the error screen in this state.
func (s Snapshot) Failed() bool {
	return s.LastError != nil && !s.Loaded
}

// Pending reports whether no fetch has completed yet.
func (s Snapshot) Pending() bool {
	return s.Attempts == 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one fetch. When err is non-nil the previous
// books are kept and the error is recorded.
func (s *Store) Update(items []books.Book, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Attempts++
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.Failures++
		return
	}

	s.snapshot.Books = cloneBooks(items)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.Failures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneBooks(items []books.Book) []books.Book {
	if len(items) == 0 {
		return nil
	}
	dup := make([]books.Book, len(items))
	copy(dup, items)
	return dup
}
