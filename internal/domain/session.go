package domain

import "time"

// SessionStep identifies which input the product flow is waiting for next.
type SessionStep string

const (
	// SessionStepName - waiting for the product name
	SessionStepName SessionStep = "name"
	// SessionStepPrice - waiting for the product price
	SessionStepPrice SessionStep = "price"
	// SessionStepWeight - waiting for the product weight
	SessionStepWeight SessionStep = "weight"
	// SessionStepImage - waiting for the product photo
	SessionStepImage SessionStep = "image"
	// SessionStepDelete - waiting for the name of the product to delete
	SessionStepDelete SessionStep = "delete"
)

// ProductSession represents an in-progress add or delete flow for one chat.
// A session exists if and only if the chat has an uncompleted flow; it is
// cleared on the flow's terminal transition.
type ProductSession struct {
	ChatID         int64
	Step           SessionStep
	Name           string
	Price          float64
	Weight         float64
	LastAccessTime time.Time     // For session expiration checking
	timeout        time.Duration // Configurable idle timeout
}

// NewProductSession creates a session positioned at the given first step
// with a configurable idle timeout.
func NewProductSession(chatID int64, step SessionStep, timeout time.Duration) *ProductSession {
	return &ProductSession{
		ChatID:         chatID,
		Step:           step,
		LastAccessTime: time.Now(),
		timeout:        timeout,
	}
}

// IsExpired checks if the session has been idle beyond the configured timeout
func (s *ProductSession) IsExpired() bool {
	return time.Since(s.LastAccessTime) > s.timeout
}

// Advance stores nothing itself; callers set the collected field and move the
// step forward with it. Kept as a single place for the step order invariant.
func (s *ProductSession) Advance(next SessionStep) {
	s.Step = next
	s.LastAccessTime = time.Now()
}
