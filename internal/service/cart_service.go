package service

import (
	"context"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/repository"
	"github.com/freshcart/commerce-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, productRepo: productRepo}
}

func parsePair(userID string, productID string) (primitive.ObjectID, primitive.ObjectID, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, errs.ErrClient
	}

	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, errs.ErrClient
	}

	return uid, pid, nil
}

// AddCartItem merges by (user, product): a repeat add increments the existing
// line instead of creating a second one. Whether the referenced user and
// product actually exist is not checked.
func (s *CartServiceImpl) AddCartItem(ctx context.Context, payload dto.CartAddRequest) (item domain.CartItem, err error) {
	uid, pid, err := parsePair(payload.UserID, payload.ProductID)
	if err != nil {
		return item, err
	}

	quantity := payload.Quantity
	if quantity < 1 {
		quantity = 1
	}

	_, err = s.cartRepo.GetCartItem(ctx, uid, pid)
	if err == nil {
		if err = s.cartRepo.IncrementCartItemQuantity(ctx, uid, pid, quantity); err != nil {
			return item, err
		}
		return s.cartRepo.GetCartItem(ctx, uid, pid)
	}
	if err != errs.ErrNotFound {
		return item, err
	}

	item = domain.CartItem{
		UserID:    uid,
		ProductID: pid,
		Quantity:  quantity,
	}

	id, err := s.cartRepo.AddCartItem(ctx, item)
	if err != nil {
		return item, err
	}

	item.ID = id

	return item, nil
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (resp []dto.CartItemResponse, err error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errs.ErrClient
	}

	items, err := s.cartRepo.GetCartItems(ctx, uid)
	if err != nil {
		return nil, err
	}

	productIDs := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	// Read-side composition: fetch the cart lines, batch-fetch the referenced
	// products, then merge. Lines whose product no longer resolves keep a nil
	// product.
	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	resp = make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		line := dto.CartItemResponse{
			ID:        item.ID.Hex(),
			UserID:    item.UserID.Hex(),
			ProductID: item.ProductID.Hex(),
			Quantity:  item.Quantity,
		}
		if p, ok := productsByID[item.ProductID]; ok {
			product := p
			line.Product = &product
		}
		resp = append(resp, line)
	}

	return resp, nil
}

func (s *CartServiceImpl) UpdateCartItemQuantity(ctx context.Context, payload dto.CartUpdateRequest) (item domain.CartItem, err error) {
	uid, pid, err := parsePair(payload.UserID, payload.ProductID)
	if err != nil {
		return item, err
	}

	// The quantity is written verbatim. Only add enforces the minimum of 1.
	err = s.cartRepo.SetCartItemQuantity(ctx, uid, pid, payload.Quantity)
	if err != nil {
		return item, err
	}

	return s.cartRepo.GetCartItem(ctx, uid, pid)
}

func (s *CartServiceImpl) RemoveCartItem(ctx context.Context, payload dto.CartRemoveRequest) error {
	uid, pid, err := parsePair(payload.UserID, payload.ProductID)
	if err != nil {
		return err
	}

	return s.cartRepo.RemoveCartItem(ctx, uid, pid)
}
