package dto

import "github.com/freshcart/commerce-service/internal/domain"

// CartItemResponse is a cart line with its referenced product expanded at read
// time. Product is nil when the reference does not resolve.
type CartItemResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Product   *domain.Product `json:"product,omitempty"`
}
