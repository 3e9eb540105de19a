package service

import (
	"context"
	"time"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/infrastructure/mailer"
	"github.com/freshcart/commerce-service/internal/repository"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	mailer      *mailer.Mailer
}

func CreateOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, mailer *mailer.Mailer) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

func (s *OrderServiceImpl) Checkout(ctx context.Context, payload dto.CheckoutRequest) (resp dto.OrderResponse, err error) {
	uid, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return resp, errs.ErrClient
	}

	items, err := s.cartRepo.GetCartItems(ctx, uid)
	if err != nil {
		return resp, err
	}

	if len(items) == 0 {
		return resp, errs.ErrEmptyCart
	}

	productIDs := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return resp, err
	}

	productsByID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	// The total uses the product's price at this moment, not a price frozen
	// when the line was added. A line whose product no longer resolves
	// contributes nothing.
	var total float64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if p, ok := productsByID[item.ProductID]; ok {
			total += p.Price * float64(item.Quantity)
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := domain.Order{
		UserID:      uid,
		Items:       orderItems,
		Location:    payload.Location,
		PhoneNumber: payload.PhoneNumber,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().Unix(),
	}

	// Order insert and cart clear are two separate writes with no transaction
	// around them. A failure in between leaves the order placed and the cart
	// intact.
	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return resp, err
	}

	if err = s.cartRepo.ClearCart(ctx, uid); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Checkout").Str("order_id", order.ID.Hex()).Msg("order placed but cart not cleared")
		return resp, err
	}

	if s.mailer != nil {
		if mailErr := s.mailer.SendOrderNotification(order); mailErr != nil {
			log.Ctx(ctx).Error().Err(mailErr).Str("component", "Checkout").Msg("order notification email failed")
		}
	}

	return composeOrder(order, productsByID, nil), nil
}

func (s *OrderServiceImpl) GetOrdersByUser(ctx context.Context, userID string) (resp []dto.OrderResponse, err error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errs.ErrClient
	}

	orders, err := s.orderRepo.GetOrdersByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	productsByID, err := s.expandProducts(ctx, orders)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, composeOrder(order, productsByID, nil))
	}

	return resp, nil
}

// GetAllOrders is the rider view: every order across all users, each with the
// customer's contact fields and product summaries merged in. No pagination,
// no status filter.
func (s *OrderServiceImpl) GetAllOrders(ctx context.Context) (resp []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	productsByID, err := s.expandProducts(ctx, orders)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(orders))
	seen := make(map[primitive.ObjectID]bool, len(orders))
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[primitive.ObjectID]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	resp = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		var contact *dto.UserContact
		if u, ok := usersByID[order.UserID]; ok {
			contact = &dto.UserContact{
				ID:          u.ID.Hex(),
				FullName:    u.FullName,
				PhoneNumber: u.PhoneNumber,
				City:        u.City,
			}
		}
		resp = append(resp, composeOrder(order, productsByID, contact))
	}

	return resp, nil
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, payload dto.OrderStatusRequest) (resp dto.OrderResponse, err error) {
	if !domain.IsValidOrderStatus(payload.Status) {
		return resp, errs.ErrInvalidOrderStatus
	}

	id, err := primitive.ObjectIDFromHex(payload.OrderID)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	// No transition-legality checks: any recognized status overwrites any
	// other, delivered back to pending included.
	err = s.orderRepo.UpdateOrderStatus(ctx, id, payload.Status)
	if err != nil {
		return resp, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return resp, err
	}

	productsByID, err := s.expandProducts(ctx, []domain.Order{order})
	if err != nil {
		return resp, err
	}

	return composeOrder(order, productsByID, nil), nil
}

func (s *OrderServiceImpl) expandProducts(ctx context.Context, orders []domain.Order) (map[primitive.ObjectID]domain.Product, error) {
	productIDs := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				productIDs = append(productIDs, item.ProductID)
			}
		}
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	return productsByID, nil
}

func composeOrder(order domain.Order, productsByID map[primitive.ObjectID]domain.Product, user *dto.UserContact) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		line := dto.OrderItemResponse{
			ProductID: item.ProductID.Hex(),
			Quantity:  item.Quantity,
		}
		if p, ok := productsByID[item.ProductID]; ok {
			line.Product = &dto.ProductSummary{
				ID:       p.ID.Hex(),
				Name:     p.Name,
				Price:    p.Price,
				ImageURL: p.ImageURL,
			}
		}
		items = append(items, line)
	}

	return dto.OrderResponse{
		ID:          order.ID.Hex(),
		UserID:      order.UserID.Hex(),
		Items:       items,
		Location:    order.Location,
		PhoneNumber: order.PhoneNumber,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		User:        user,
	}
}
