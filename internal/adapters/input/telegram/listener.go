package telegram

import (
	"jewelshop/internal/domain"
	"jewelshop/internal/ports/input"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"
)

// Listener struct - Primary/Driving adapter turning Telegram updates into
// domain chat events for the bot service.
type Listener struct {
	bot     *tele.Bot
	service input.BotService
}

// NewListener func - Registers the bot handlers and returns the listener
func NewListener(bot *tele.Bot, service input.BotService) *Listener {
	l := &Listener{
		bot:     bot,
		service: service,
	}
	l.register()
	return l
}

// Start blocks polling for updates until Stop is called.
func (l *Listener) Start() {
	l.bot.Start()
}

// Stop terminates the update poller.
func (l *Listener) Stop() {
	l.bot.Stop()
}

func (l *Listener) register() {
	l.bot.Handle(string(domain.ChatCommandAddProduct), func(c tele.Context) error {
		return l.dispatch(l.convertCommand(c, domain.ChatCommandAddProduct))
	})
	l.bot.Handle(string(domain.ChatCommandDeleteProduct), func(c tele.Context) error {
		return l.dispatch(l.convertCommand(c, domain.ChatCommandDeleteProduct))
	})
	l.bot.Handle(string(domain.ChatCommandCancel), func(c tele.Context) error {
		return l.dispatch(l.convertCommand(c, domain.ChatCommandCancel))
	})
	l.bot.Handle(tele.OnText, func(c tele.Context) error {
		return l.dispatch(l.convertText(c))
	})
	l.bot.Handle(tele.OnPhoto, func(c tele.Context) error {
		return l.dispatch(l.convertPhoto(c))
	})
}

func (l *Listener) dispatch(event domain.ChatEvent) error {
	if err := l.service.HandleEvent(event); err != nil {
		logrus.Errorf("Failed to handle chat event: %v", err)
		return err
	}
	return nil
}

// convertCommand - Converts a slash-command update to a domain event
func (l *Listener) convertCommand(c tele.Context, command domain.ChatCommand) domain.ChatEvent {
	return domain.ChatEvent{
		Type:    domain.ChatEventTypeCommand,
		ChatID:  c.Chat().ID,
		Command: command,
	}
}

// convertText - Converts a free-text update to a domain event
func (l *Listener) convertText(c tele.Context) domain.ChatEvent {
	return domain.ChatEvent{
		Type:   domain.ChatEventTypeText,
		ChatID: c.Chat().ID,
		Text:   c.Text(),
	}
}

// convertPhoto - Converts a photo update to a domain event. Telegram offers
// several resolutions per photo; telebot surfaces the largest one, which is
// passed on as the only variant.
func (l *Listener) convertPhoto(c tele.Context) domain.ChatEvent {
	event := domain.ChatEvent{
		Type:   domain.ChatEventTypePhoto,
		ChatID: c.Chat().ID,
	}
	if photo := c.Message().Photo; photo != nil {
		event.Photos = []domain.PhotoVariant{
			{
				FileID: photo.FileID,
				Width:  photo.Width,
				Height: photo.Height,
			},
		}
	}
	return event
}
