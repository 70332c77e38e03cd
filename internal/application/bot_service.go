package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jewelshop/internal/domain"
	"jewelshop/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Reply texts sent back through the chat transport.
const (
	msgAskName      = "Enter the product name:"
	msgAskPrice     = "Enter the product price:"
	msgAskWeight    = "Enter the product weight:"
	msgAskImage     = "Now send the product image."
	msgAskDelete    = "Enter the product name you want to delete:"
	msgInvalidPrice = "Please enter a valid price."
	msgInvalidWt    = "Please enter a valid weight."
	msgAdded        = "✅ Product added successfully!"
	msgDeleted      = "✅ Product deleted successfully!"
	msgNotFound     = "❌ Product not found."
	msgSaveError    = "Error saving product."
	msgImageError   = "Error processing image."
	msgFindError    = "Error finding the product."
	msgDeleteError  = "Error deleting product."
	msgCancelled    = "Flow cancelled."
	msgNoFlow       = "Nothing to cancel."
)

// BotService struct - Application service driving the conversational
// product flows. It owns the per-chat sessions: a slash command opens a flow,
// each following event advances it, and the terminal transition always clears
// the session whether or not the side effects succeeded.
type BotService struct {
	chatClient     output.ChatClient
	productRepo    output.ProductRepository
	sessionStore   output.SessionStore
	mediaStore     output.MediaStore
	sessionTimeout time.Duration
}

// NewBotService func - Creates new bot service
func NewBotService(
	chatClient output.ChatClient,
	productRepo output.ProductRepository,
	sessionStore output.SessionStore,
	mediaStore output.MediaStore,
	sessionTimeout time.Duration,
) *BotService {
	return &BotService{
		chatClient:     chatClient,
		productRepo:    productRepo,
		sessionStore:   sessionStore,
		mediaStore:     mediaStore,
		sessionTimeout: sessionTimeout,
	}
}

// HandleEvent func - Use case: advance one chat's flow with one inbound event
func (s *BotService) HandleEvent(event domain.ChatEvent) error {
	logrus.Infof("Received chat event: type=%s, chatID=%d", event.Type, event.ChatID)

	switch event.Type {
	case domain.ChatEventTypeCommand:
		return s.handleCommand(event)
	case domain.ChatEventTypeText:
		return s.handleText(event)
	case domain.ChatEventTypePhoto:
		return s.handlePhoto(event)
	default:
		logrus.Infof("Unhandled event type: %s", event.Type)
		return nil
	}
}

// handleCommand - Slash commands start a new flow unconditionally, replacing
// any in-progress session for that chat.
func (s *BotService) handleCommand(event domain.ChatEvent) error {
	switch event.Command {
	case domain.ChatCommandAddProduct:
		session := domain.NewProductSession(event.ChatID, domain.SessionStepName, s.sessionTimeout)
		if err := s.sessionStore.UpdateSession(session); err != nil {
			return fmt.Errorf("failed to open add flow: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgAskName)

	case domain.ChatCommandDeleteProduct:
		session := domain.NewProductSession(event.ChatID, domain.SessionStepDelete, s.sessionTimeout)
		if err := s.sessionStore.UpdateSession(session); err != nil {
			return fmt.Errorf("failed to open delete flow: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgAskDelete)

	case domain.ChatCommandCancel:
		session, err := s.sessionStore.GetSession(event.ChatID)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			return s.chatClient.SendMessage(event.ChatID, msgNoFlow)
		}
		if err := s.sessionStore.DeleteSession(event.ChatID); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgCancelled)

	default:
		logrus.Infof("Unknown command: %s", event.Command)
		return nil
	}
}

// handleText - Free text advances the active flow; text for a chat with no
// session is a no-op.
func (s *BotService) handleText(event domain.ChatEvent) error {
	session, err := s.sessionStore.GetSession(event.ChatID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil
	}

	switch session.Step {
	case domain.SessionStepName:
		session.Name = event.Text
		session.Advance(domain.SessionStepPrice)
		if err := s.sessionStore.UpdateSession(session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgAskPrice)

	case domain.SessionStepPrice:
		price, err := strconv.ParseFloat(strings.TrimSpace(event.Text), 64)
		if err != nil {
			// Re-prompt without touching the flow state.
			return s.chatClient.SendMessage(event.ChatID, msgInvalidPrice)
		}
		session.Price = price
		session.Advance(domain.SessionStepWeight)
		if err := s.sessionStore.UpdateSession(session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgAskWeight)

	case domain.SessionStepWeight:
		weight, err := strconv.ParseFloat(strings.TrimSpace(event.Text), 64)
		if err != nil {
			return s.chatClient.SendMessage(event.ChatID, msgInvalidWt)
		}
		session.Weight = weight
		session.Advance(domain.SessionStepImage)
		if err := s.sessionStore.UpdateSession(session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		return s.chatClient.SendMessage(event.ChatID, msgAskImage)

	case domain.SessionStepImage:
		// Only a photo completes this step.
		return nil

	case domain.SessionStepDelete:
		return s.completeDelete(event.ChatID, strings.TrimSpace(event.Text))

	default:
		logrus.Warnf("Session for chat %d in unknown step %q", event.ChatID, session.Step)
		return nil
	}
}

// handlePhoto - A photo is accepted only while the flow waits at the image
// step; anywhere else it is ignored.
func (s *BotService) handlePhoto(event domain.ChatEvent) error {
	session, err := s.sessionStore.GetSession(event.ChatID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || session.Step != domain.SessionStepImage {
		return nil
	}
	return s.completeAdd(session, event)
}

// completeAdd - Terminal transition of the add flow: download the photo, write
// it to the media store, insert the product. The image file lands before the
// row; a failed insert removes the file again. The session clears no matter
// what.
func (s *BotService) completeAdd(session *domain.ProductSession, event domain.ChatEvent) error {
	defer func() {
		if err := s.sessionStore.DeleteSession(session.ChatID); err != nil {
			logrus.Errorf("Failed to clear session for chat %d: %v", session.ChatID, err)
		}
	}()

	photo := event.BestPhoto()
	if photo == nil {
		return s.chatClient.SendMessage(session.ChatID, msgImageError)
	}

	body, err := s.chatClient.OpenFile(photo.FileID)
	if err != nil {
		logrus.Errorf("Failed to open photo file: %v", err)
		return s.chatClient.SendMessage(session.ChatID, msgImageError)
	}
	defer body.Close()

	fileName := fmt.Sprintf("%d_%d.jpg", time.Now().UnixMilli(), session.ChatID)
	if err := s.mediaStore.Save(fileName, body); err != nil {
		logrus.Errorf("Failed to save image: %v", err)
		return s.chatClient.SendMessage(session.ChatID, msgImageError)
	}

	product := domain.Product{
		Name:   session.Name,
		Price:  session.Price,
		Image:  fileName,
		Weight: session.Weight,
	}
	if _, err := s.productRepo.Insert(product); err != nil {
		logrus.Errorf("Failed to insert product: %v", err)
		if rmErr := s.mediaStore.Remove(fileName); rmErr != nil {
			logrus.Errorf("Failed to remove orphaned image %s: %v", fileName, rmErr)
		}
		return s.chatClient.SendMessage(session.ChatID, msgSaveError)
	}

	logrus.Infof("Product %q added via chat %d", product.Name, session.ChatID)
	return s.chatClient.SendMessage(session.ChatID, msgAdded)
}

// completeDelete - Terminal transition of the delete flow: resolve the name,
// delete the row, then best-effort remove the image file. Success is reported
// once the row is gone regardless of the file outcome. The session clears no
// matter what.
func (s *BotService) completeDelete(chatID int64, name string) error {
	defer func() {
		if err := s.sessionStore.DeleteSession(chatID); err != nil {
			logrus.Errorf("Failed to clear session for chat %d: %v", chatID, err)
		}
	}()

	product, err := s.productRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return s.chatClient.SendMessage(chatID, msgNotFound)
		}
		logrus.Errorf("Failed to find product %q: %v", name, err)
		return s.chatClient.SendMessage(chatID, msgFindError)
	}

	if _, err := s.productRepo.DeleteByName(name); err != nil {
		logrus.Errorf("Failed to delete product %q: %v", name, err)
		return s.chatClient.SendMessage(chatID, msgDeleteError)
	}

	if product.HasLocalImage() {
		if err := s.mediaStore.Remove(product.Image); err != nil {
			logrus.Errorf("Failed to remove image %s: %v", product.Image, err)
		}
	}

	logrus.Infof("Product %q deleted via chat %d", name, chatID)
	return s.chatClient.SendMessage(chatID, msgDeleted)
}
