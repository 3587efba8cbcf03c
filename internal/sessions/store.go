package sessions

import (
	"sync"

	"github.com/catebi/go-tax-declaration/internal/models"
)

// Store keeps one Session per user in process memory. Every operation on a
// session runs under that key's lock, so session state has a single writer
// even when the host serves many users concurrently. Nothing is persisted.
type Store struct {
	mu      sync.Mutex
	initial models.SessionState
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *models.Session
}

func NewStore(initial models.SessionState) *Store {
	return &Store{
		initial: initial,
		entries: make(map[string]*entry),
	}
}

// InitialState is the state a fresh or reset session starts in.
func (s *Store) InitialState() models.SessionState {
	return s.initial
}

// Do runs fn with the user's session under the per-key lock, creating the
// session on first contact. Mutations fn applies are kept regardless of the
// returned error; callers therefore mutate only after their action succeeded.
func (s *Store) Do(userID string, fn func(session *models.Session) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Remove drops the session entirely; the next contact starts fresh.
func (s *Store) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) entry(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{session: models.NewSession(userID, s.initial)}
		s.entries[userID] = e
	}
	return e
}
