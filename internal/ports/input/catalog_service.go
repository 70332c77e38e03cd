package input

import "jewelshop/internal/domain"

// CatalogService interface - Input port (use case)
// Defines what the storefront can do with the catalog.
type CatalogService interface {
	// ListProducts returns the full catalog with storefront-resolvable image
	// references.
	ListProducts() ([]domain.ProductResponse, error)

	// Checkout composes an order summary and pushes it to the admin chat.
	Checkout(request domain.CheckoutRequest) error
}
