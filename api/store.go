package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bent101/wordle-assist/solver"
)

// entry guards one session; solver.Session itself is not concurrency safe.
type entry struct {
	mu        sync.Mutex
	session   *solver.Session
	createdAt time.Time
}

// Store holds all game sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	factory  func() *solver.Session
}

func NewStore(factory func() *solver.Session) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		factory:  factory,
	}
}

// create starts a new session and returns its ID.
func (s *Store) create() (string, *entry) {
	e := &entry{session: s.factory(), createdAt: time.Now()}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()

	return id, e
}

// get returns a session by ID, or nil if not found.
func (s *Store) get(id string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
