package dto

type CheckoutRequest struct {
	UserID      string `json:"userId"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phoneNumber"`
}

type OrderStatusRequest struct {
	OrderID string
	Status  string `json:"status"`
}
