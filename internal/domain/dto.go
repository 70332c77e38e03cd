package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// ProductResponse struct - Domain response DTO for one catalog entry
	ProductResponse struct {
		ID     int64   `json:"id"`
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Image  string  `json:"image"`
		Weight float64 `json:"weight"`
	}

	// CheckoutItem struct - one cart line in a checkout request
	CheckoutItem struct {
		Name     string
		Price    float64
		Quantity int
	}

	// CheckoutRequest struct - Domain checkout request DTO
	CheckoutRequest struct {
		Items []CheckoutItem
		Total float64
	}
)
