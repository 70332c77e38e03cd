package memory

import (
	"sync"
	"time"

	"jewelshop/internal/domain"
	"jewelshop/internal/ports/output"
)

// Compile-time check to ensure SessionStore implements the output port
var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore struct - Output adapter for in-memory flow sessions.
// Uses sync.Map for thread-safe access: the bot poller and the HTTP server
// run concurrently in one process. Idle sessions are dropped lazily on read.
type SessionStore struct {
	sessions sync.Map
	timeout  time.Duration
}

// NewSessionStore creates an in-memory session store.
// timeout: duration after which an untouched flow is treated as abandoned.
func NewSessionStore(timeout time.Duration) *SessionStore {
	return &SessionStore{timeout: timeout}
}

// GetTimeout returns the configured idle timeout.
// The state machine uses it when opening new sessions.
func (m *SessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetSession retrieves the flow session for a chat id.
// Returns nil when no session exists or the session has idled past the
// timeout; expired sessions are deleted on the way out (lazy cleanup).
// LastAccessTime is bumped for valid sessions.
func (m *SessionStore) GetSession(chatID int64) (*domain.ProductSession, error) {
	value, exists := m.sessions.Load(chatID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.ProductSession)
	if !ok {
		m.sessions.Delete(chatID)
		return nil, nil
	}

	if session.IsExpired() {
		m.sessions.Delete(chatID)
		return nil, nil
	}

	session.LastAccessTime = time.Now()
	return session, nil
}

// UpdateSession creates or overwrites the session for its chat id.
// LastAccessTime is bumped before storing.
func (m *SessionStore) UpdateSession(session *domain.ProductSession) error {
	session.LastAccessTime = time.Now()
	m.sessions.Store(session.ChatID, session)
	return nil
}

// DeleteSession removes the session for a chat id.
// Deleting a session that does not exist is not an error.
func (m *SessionStore) DeleteSession(chatID int64) error {
	m.sessions.Delete(chatID)
	return nil
}
