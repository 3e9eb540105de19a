package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Location    string             `bson:"location" json:"location"`
	PhoneNumber string             `bson:"phone_number" json:"phoneNumber"`
	// TotalAmount is computed from current product prices at checkout time
	// and never recomputed afterwards.
	TotalAmount float64 `bson:"total_amount" json:"totalAmount"`
	Status      string  `bson:"status" json:"status"`
	CreatedAt   int64   `bson:"created_at" json:"createdAt"`
}
