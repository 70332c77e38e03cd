package telegram

import (
	"fmt"
	"io"

	"jewelshop/internal/ports/output"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"
)

// Compile-time check to ensure ChatClient implements the output port
var _ output.ChatClient = (*ChatClient)(nil)

// ChatClient struct - Output adapter for the Telegram messaging platform
type ChatClient struct {
	bot *tele.Bot
}

// NewChatClient func - Creates new Telegram chat client adapter
func NewChatClient(bot *tele.Bot) *ChatClient {
	return &ChatClient{bot: bot}
}

// SendMessage - Delivers a plain-text message to a chat
func (c *ChatClient) SendMessage(chatID int64, text string) error {
	if _, err := c.bot.Send(tele.ChatID(chatID), text); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

// OpenFile - Resolves the download link for an uploaded file and opens a
// stream over its bytes
func (c *ChatClient) OpenFile(fileID string) (io.ReadCloser, error) {
	file, err := c.bot.FileByID(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}

	body, err := c.bot.File(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}

	logrus.Infof("Opened download stream for file %s", fileID)
	return body, nil
}
