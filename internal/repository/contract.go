package repository

import (
	"context"

	"github.com/freshcart/commerce-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName string, city string, location string) error
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error)
}

type CartRepository interface {
	AddCartItem(ctx context.Context, data domain.CartItem) (primitive.ObjectID, error)
	GetCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (domain.CartItem, error)
	GetCartItems(ctx context.Context, userID primitive.ObjectID) ([]domain.CartItem, error)
	IncrementCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, delta int64) error
	SetCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, quantity int64) error
	RemoveCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error
	ClearCart(ctx context.Context, userID primitive.ObjectID) error
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error)
	GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	GetOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error
}
