package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions binds one Gate to each browser. Gates live only in process memory, so a
// restart logs everyone out.
type Sessions struct {
	users UserLookup

	mu    sync.RWMutex
	gates map[string]*Gate
}

func NewSessions(users UserLookup) *Sessions {
	return &Sessions{users: users, gates: make(map[string]*Gate)}
}

// Create registers a fresh LoggedOut gate and returns its session ID.
func (s *Sessions) Create() (string, *Gate) {
	id := uuid.NewString()
	g := NewGate(s.users)

	s.mu.Lock()
	s.gates[id] = g
	s.mu.Unlock()
	return id, g
}

// Get returns the gate for id, if the session exists.
func (s *Sessions) Get(id string) (*Gate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gates[id]
	return g, ok
}

// Delete forgets the session.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.gates, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.gates)
}
