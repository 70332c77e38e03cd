package domain

import "strings"

// Product struct - Core domain entity, one row of the catalog table
type Product struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Weight float64 `json:"weight"`
}

// TableName func
func (p *Product) TableName() string {
	return "products"
}

// ImageURL returns the image reference the storefront can resolve. Absolute
// URLs pass through untouched, stored filenames become root-relative paths
// under the static mount.
func (p *Product) ImageURL() string {
	if strings.HasPrefix(p.Image, "http://") || strings.HasPrefix(p.Image, "https://") {
		return p.Image
	}
	return "/" + p.Image
}

// HasLocalImage reports whether the product's image lives in the media store
// rather than behind an absolute URL.
func (p *Product) HasLocalImage() bool {
	return !strings.HasPrefix(p.Image, "http://") && !strings.HasPrefix(p.Image, "https://")
}

// SeedProducts returns the catalog inserted once when the store starts empty.
func SeedProducts() []Product {
	return []Product{
		{Name: "Gold Ring", Price: 500, Image: "rijng.webp", Weight: 300},
		{Name: "Luxury Necklace", Price: 1200, Image: "necklace.jpg", Weight: 250},
		{Name: "Golden Bracelet", Price: 850, Image: "goldenbraslet.avif", Weight: 500},
		{Name: "Gold Earrings", Price: 1500, Image: "goldearings.jpg", Weight: 100},
	}
}
