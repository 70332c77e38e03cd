package output

import "io"

// ChatClient interface - Output port
// Defines what the application needs from the messaging platform.
type ChatClient interface {
	// SendMessage delivers a plain-text message to a chat.
	SendMessage(chatID int64, text string) error

	// OpenFile resolves a downloadable link for an uploaded file and opens a
	// stream over its bytes. The caller closes the reader.
	OpenFile(fileID string) (io.ReadCloser, error)
}
