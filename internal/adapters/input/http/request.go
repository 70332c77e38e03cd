package http

type (
	// CheckoutItem struct - one cart line in the checkout request body
	CheckoutItem struct {
		Name     string  `json:"name" validate:"required" form:"name"`
		Price    float64 `json:"price" validate:"gte=0" form:"price"`
		Quantity int     `json:"quantity" validate:"required,gte=1" form:"quantity"`
	}

	// CheckoutRequest struct - HTTP request DTO for storefront checkout
	CheckoutRequest struct {
		Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
		Total float64        `json:"total" validate:"gte=0"`
	}
)
