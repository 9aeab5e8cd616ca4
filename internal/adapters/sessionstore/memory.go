// Package sessionstore provides the chat session table.
// Clean Architecture: Adapter implementing ports.SessionStore. Pure in-memory,
// process-lifetime state: losing the process loses all active conversations.
package sessionstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/svpcet/campus-compass/internal/domain/ports"
)

// MemoryStore maps generated chat identifiers to live sessions.
// Entries are never evicted or removed. Each stored session is wrapped with a
// per-session mutex so concurrent turns on one identifier serialize instead
// of interleaving on the underlying handle.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*serializedSession
}

// NewMemoryStore creates an empty session table.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*serializedSession),
	}
}

// Create records the session under a fresh uuid and returns it.
func (s *MemoryStore) Create(session ports.ChatSession) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &serializedSession{inner: session}
	return id
}

// Get looks up a previously returned identifier.
func (s *MemoryStore) Get(id string) (ports.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return session, true
}

// Len returns the number of active sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// serializedSession serializes Send calls on one underlying session.
type serializedSession struct {
	mu    sync.Mutex
	inner ports.ChatSession
}

func (l *serializedSession) Send(ctx context.Context, message string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inner == nil {
		return "", ports.ErrInvalidSession
	}
	return l.inner.Send(ctx, message)
}
