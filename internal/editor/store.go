package editor

import "sync"

// Store keeps per-user editor sessions in memory. Order and expansion are
// session-local state and are deliberately not persisted server-side; a
// process restart starts everyone from the default layout again.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Controller
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Controller)}
}

// Get returns the controller for userID, or nil if no session exists.
func (s *Store) Get(userID string) *Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// GetOrCreate returns the controller for userID, building one when no
// session exists. The existence check is repeated under the write lock so
// two concurrent first requests settle on a single controller instead of
// the later one replacing the earlier one's state.
func (s *Store) GetOrCreate(userID string, build func() *Controller) *Controller {
	if c := s.Get(userID); c != nil {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.sessions[userID]; c != nil {
		return c
	}
	c := build()
	s.sessions[userID] = c
	return c
}

// Drop removes the session for userID.
func (s *Store) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
