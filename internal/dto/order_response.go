package dto

type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Product   *ProductSummary `json:"product,omitempty"`
}

type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// UserContact is the slice of the user record a rider needs to hand over a
// delivery.
type UserContact struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Items       []OrderItemResponse `json:"items"`
	Location    string              `json:"location"`
	PhoneNumber string              `json:"phoneNumber"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   int64               `json:"createdAt"`
	User        *UserContact        `json:"user,omitempty"`
}
