package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem holds at most one document per (user, product) pair. The pair
// invariant is kept by look-up-then-merge on add, not by a unique index.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
}
