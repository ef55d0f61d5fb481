package interview

import (
	"fmt"
	"sync"
)

// Registry maps connection identities to their sessions. Exactly one session
// may exist per connection at any time; creation and teardown for the same
// identity are serialized by the registry lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open creates and registers a session for the connection.
func (r *Registry) Open(connID string, questions []string, language string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[connID]; exists {
		return nil, fmt.Errorf("%w: connection %s", ErrDuplicateSession, connID)
	}
	sess, err := NewSession(questions, language)
	if err != nil {
		return nil, err
	}
	r.sessions[connID] = sess
	return sess, nil
}

// Get returns the session owned by the connection.
func (r *Registry) Get(connID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[connID]
	if !ok {
		return nil, fmt.Errorf("%w: connection %s", ErrSessionNotFound, connID)
	}
	return sess, nil
}

// Close abandons and removes the connection's session. Closing an unknown
// connection is a no-op, so disconnect paths may call it unconditionally.
func (r *Registry) Close(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[connID]; ok {
		sess.Abandon()
		delete(r.sessions, connID)
	}
}

// Len reports the number of active sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
