package domain

import "errors"

var (
	// ErrProductNotFound indicates no catalog row matched the requested name
	ErrProductNotFound = errors.New("product not found")

	// ErrNoActiveSession indicates an event arrived for a chat with no flow in progress
	ErrNoActiveSession = errors.New("no active session")
)
