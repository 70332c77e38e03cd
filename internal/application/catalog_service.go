package application

import (
	"fmt"
	"strings"

	"jewelshop/internal/domain"
	"jewelshop/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CatalogService struct - Application service implementing storefront use cases
type CatalogService struct {
	productRepo output.ProductRepository
	chatClient  output.ChatClient
	adminChatID int64
}

// NewCatalogService func - Creates new catalog service
func NewCatalogService(productRepo output.ProductRepository, chatClient output.ChatClient, adminChatID int64) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		chatClient:  chatClient,
		adminChatID: adminChatID,
	}
}

// ListProducts func - Use case: full catalog with storefront-resolvable images
func (s *CatalogService) ListProducts() ([]domain.ProductResponse, error) {
	products, err := s.productRepo.ListAll()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, domain.ProductResponse{
			ID:     p.ID,
			Name:   p.Name,
			Price:  p.Price,
			Image:  p.ImageURL(),
			Weight: p.Weight,
		})
	}
	return responses, nil
}

// Checkout func - Use case: push the order summary to the admin chat
func (s *CatalogService) Checkout(request domain.CheckoutRequest) error {
	var b strings.Builder
	b.WriteString("🛒 New order:\n")
	for _, item := range request.Items {
		fmt.Fprintf(&b, "%s x %d = $%.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "Total: $%.2f", request.Total)

	if err := s.chatClient.SendMessage(s.adminChatID, b.String()); err != nil {
		logrus.Errorf("Failed to push order summary: %v", err)
		return fmt.Errorf("failed to push order summary: %w", err)
	}

	logrus.Infof("Order with %d items pushed to admin chat", len(request.Items))
	return nil
}
