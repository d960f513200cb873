package controller

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager maps browser session IDs to their state. Sessions live in
// memory only and vanish on restart, matching the page-view lifetime of the
// state they hold.
type SessionManager struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	controller *Controller
}

// NewSessionManager creates a manager whose sessions are owned by c.
func NewSessionManager(c *Controller) *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session), controller: c}
}

// NewID returns a fresh session identifier.
func (m *SessionManager) NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it if needed. An unknown or empty
// id gets a fresh session under a fresh id; the returned id is always the
// one the session is stored under.
func (m *SessionManager) Get(id string) (string, *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return id, s
		}
	}
	if id == "" {
		id = m.NewID()
	}
	s := m.controller.NewSession()
	m.sessions[id] = s
	return id, s
}

// Drop removes the session for id, if any.
func (m *SessionManager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
