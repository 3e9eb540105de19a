package service_test

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes with the same error semantics as the MongoDB
// implementations, so the services can be exercised without a running store.

type fakeUserRepository struct {
	users []domain.User
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.PhoneNumber == data.PhoneNumber {
			return primitive.NilObjectID, errs.ErrPhoneAlreadyUsed
		}
	}

	data.ID = primitive.NewObjectID()
	r.users = append(r.users, data)
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepository) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName string, city string, location string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].FullName = fullName
			r.users[i].City = city
			r.users[i].Location = location
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeProductRepository struct {
	products []domain.Product
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.products = append(r.products, data)
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (r *fakeProductRepository) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type fakeCartRepository struct {
	items []domain.CartItem
}

func (r *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.items = append(r.items, data)
	return data.ID, nil
}

func (r *fakeCartRepository) GetCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (domain.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, errs.ErrNotFound
}

func (r *fakeCartRepository) GetCartItems(ctx context.Context, userID primitive.ObjectID) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCartRepository) IncrementCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, delta int64) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items[i].Quantity += delta
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeCartRepository) SetCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, quantity int64) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items[i].Quantity = quantity
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeCartRepository) RemoveCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepository) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	var kept []domain.CartItem
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeOrderRepository struct {
	orders []domain.Order
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.orders = append(r.orders, data)
	return data.ID, nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (r *fakeOrderRepository) GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepository) GetOrders(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *fakeOrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeMediaHost struct {
	url     string
	err     error
	uploads int
}

func (m *fakeMediaHost) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	m.uploads++
	if m.err != nil {
		return "", m.err
	}
	if m.url == "" {
		return "", errors.New("no url configured")
	}
	return m.url, nil
}
