package service

import (
	"context"
	"io"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
)

type UserService interface {
	Signup(ctx context.Context, payload dto.CredentialsRequest) (dto.SignupResponse, error)
	Login(ctx context.Context, payload dto.CredentialsRequest) (dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, payload dto.ProfileUpdateRequest) (dto.UserResponse, error)
}

type ProductService interface {
	AddProduct(ctx context.Context, payload dto.ProductRequest, filename string, file io.Reader) (domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
}

type CartService interface {
	AddCartItem(ctx context.Context, payload dto.CartAddRequest) (domain.CartItem, error)
	GetCart(ctx context.Context, userID string) ([]dto.CartItemResponse, error)
	UpdateCartItemQuantity(ctx context.Context, payload dto.CartUpdateRequest) (domain.CartItem, error)
	RemoveCartItem(ctx context.Context, payload dto.CartRemoveRequest) error
}

type OrderService interface {
	Checkout(ctx context.Context, payload dto.CheckoutRequest) (dto.OrderResponse, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]dto.OrderResponse, error)
	GetAllOrders(ctx context.Context) ([]dto.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, payload dto.OrderStatusRequest) (dto.OrderResponse, error)
}
