package service_test

import (
	"context"
	"testing"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddCartItemMergesQuantities(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	item, err := svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.Quantity)

	item, err = svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.Quantity)

	// One line per (user, product) pair.
	require.Len(t, cartRepo.items, 1)
}

func TestAddCartItemDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	item, err := svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity)

	item, err = svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.Quantity)
}

func TestAddCartItemAcceptsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	// Neither the user nor the product exists anywhere; the add still
	// succeeds.
	item, err := svc.AddCartItem(ctx, dto.CartAddRequest{
		UserID:    primitive.NewObjectID().Hex(),
		ProductID: primitive.NewObjectID().Hex(),
		Quantity:  1,
	})
	require.NoError(t, err)
	assert.False(t, item.ID.IsZero())
}

func TestGetCartExpandsProducts(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	productRepo := &fakeProductRepository{}
	svc := service.CreateCartService(cartRepo, productRepo)

	productID, err := productRepo.AddProduct(ctx, domain.Product{Name: "Milk", Price: 3})
	require.NoError(t, err)

	userID := primitive.NewObjectID().Hex()
	_, err = svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID.Hex(), Quantity: 4})
	require.NoError(t, err)

	// A second line whose product reference dangles.
	_, err = svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cart, 2)

	require.NotNil(t, cart[0].Product)
	assert.Equal(t, "Milk", cart[0].Product.Name)
	assert.Equal(t, int64(4), cart[0].Quantity)
	assert.Nil(t, cart[1].Product)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	_, err := svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	// The quantity is written verbatim, unlike add there is no minimum.
	item, err := svc.UpdateCartItemQuantity(ctx, dto.CartUpdateRequest{UserID: userID, ProductID: productID, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Quantity)
}

func TestUpdateCartItemQuantityMissingPair(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	_, err := svc.UpdateCartItemQuantity(ctx, dto.CartUpdateRequest{
		UserID:    primitive.NewObjectID().Hex(),
		ProductID: primitive.NewObjectID().Hex(),
		Quantity:  7,
	})
	assert.Equal(t, errs.ErrNotFound, err)
	// The miss must not create a record.
	assert.Empty(t, cartRepo.items)
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cartRepo := &fakeCartRepository{}
	svc := service.CreateCartService(cartRepo, &fakeProductRepository{})

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	_, err := svc.AddCartItem(ctx, dto.CartAddRequest{UserID: userID, ProductID: productID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCartItem(ctx, dto.CartRemoveRequest{UserID: userID, ProductID: productID}))
	assert.Empty(t, cartRepo.items)

	// Removing the same pair again is still a success.
	require.NoError(t, svc.RemoveCartItem(ctx, dto.CartRemoveRequest{UserID: userID, ProductID: productID}))
}

func TestCartMalformedIDs(t *testing.T) {
	svc := service.CreateCartService(&fakeCartRepository{}, &fakeProductRepository{})

	_, err := svc.AddCartItem(context.Background(), dto.CartAddRequest{UserID: "nope", ProductID: "also nope"})
	assert.Equal(t, errs.ErrClient, err)

	_, err = svc.GetCart(context.Background(), "nope")
	assert.Equal(t, errs.ErrClient, err)
}
