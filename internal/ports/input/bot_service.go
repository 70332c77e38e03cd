package input

import "jewelshop/internal/domain"

// BotService interface - Input port (use case)
// Defines what the application can do with inbound chat events.
type BotService interface {
	// HandleEvent advances the chat's flow session with one inbound event and
	// sends any replies through the chat client. Events for chats with no
	// active flow are ignored unless they start one.
	HandleEvent(event domain.ChatEvent) error
}
