package domain

// ChatEventType represents the kind of inbound event from the chat transport
type ChatEventType string

const (
	// ChatEventTypeCommand - a recognized slash command
	ChatEventTypeCommand ChatEventType = "command"
	// ChatEventTypeText - a free-text message
	ChatEventTypeText ChatEventType = "text"
	// ChatEventTypePhoto - a photo message
	ChatEventTypePhoto ChatEventType = "photo"
)

// ChatCommand represents a slash command the bot understands
type ChatCommand string

const (
	// ChatCommandAddProduct starts the product creation flow
	ChatCommandAddProduct ChatCommand = "/addproduct"
	// ChatCommandDeleteProduct starts the product deletion flow
	ChatCommandDeleteProduct ChatCommand = "/deleteproduct"
	// ChatCommandCancel abandons any in-progress flow
	ChatCommandCancel ChatCommand = "/cancel"
)

// PhotoVariant is one resolution of an uploaded photo as offered by the
// chat transport.
type PhotoVariant struct {
	FileID string
	Width  int
	Height int
}

// ChatEvent represents an inbound message from the chat transport (domain entity)
type ChatEvent struct {
	Type    ChatEventType
	ChatID  int64
	Command ChatCommand
	Text    string
	Photos  []PhotoVariant
}

// BestPhoto returns the highest-resolution variant, or nil when the event
// carries no photo.
func (e *ChatEvent) BestPhoto() *PhotoVariant {
	var best *PhotoVariant
	for i := range e.Photos {
		v := &e.Photos[i]
		if best == nil || v.Width*v.Height > best.Width*best.Height {
			best = v
		}
	}
	return best
}
