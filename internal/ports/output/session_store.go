package output

import "jewelshop/internal/domain"

// SessionStore interface - Output port
// Defines what the state machine needs for keeping per-chat flow sessions.
// Implementations must be safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves the flow session for a chat id.
	// Returns nil when no session exists or the session has idled past its
	// timeout; implementations should lazily drop expired sessions and bump
	// LastAccessTime on valid ones. An error means a storage access failure.
	GetSession(chatID int64) (*domain.ProductSession, error)

	// UpdateSession creates or overwrites the session for its chat id.
	UpdateSession(session *domain.ProductSession) error

	// DeleteSession removes the session for a chat id. Deleting a session
	// that does not exist is not an error.
	DeleteSession(chatID int64) error
}
