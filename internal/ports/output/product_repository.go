package output

import "jewelshop/internal/domain"

// ProductRepository interface - Output port
// One storage surface for the catalog table, regardless of binding.
type ProductRepository interface {
	// Insert persists a new product and returns it with its assigned id.
	Insert(product domain.Product) (*domain.Product, error)

	// ListAll returns every product in the catalog.
	ListAll() ([]domain.Product, error)

	// FindByName returns the oldest product with the exact name, or
	// domain.ErrProductNotFound when no row matches.
	FindByName(name string) (*domain.Product, error)

	// DeleteByName removes the oldest product with the exact name and returns
	// the removed row, or domain.ErrProductNotFound when no row matches.
	DeleteByName(name string) (*domain.Product, error)
}
