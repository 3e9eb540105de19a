package repository

import (
	"context"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCartRepository struct {
	db *mongo.Database
}

func CreateCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepository{db: db}
}

func pairFilter(userID primitive.ObjectID, productID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "user_id", Value: userID},
		{Key: "product_id", Value: productID},
	}
}

func (r *MongoDBCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (primitive.ObjectID, error) {
	result, err := r.db.Collection("cart_items").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCartItem").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBCartRepository) GetCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (item domain.CartItem, err error) {
	err = r.db.Collection("cart_items").FindOne(ctx, pairFilter(userID, productID)).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return item, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItem").Msg("")
		return item, err
	}

	return item, nil
}

func (r *MongoDBCartRepository) GetCartItems(ctx context.Context, userID primitive.ObjectID) (items []domain.CartItem, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}

	cursor, err := r.db.Collection("cart_items").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	if err = cursor.All(ctx, &items); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	return items, nil
}

func (r *MongoDBCartRepository) IncrementCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, delta int64) error {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "quantity", Value: delta}}}}

	result, err := r.db.Collection("cart_items").UpdateOne(ctx, pairFilter(userID, productID), update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IncrementCartItemQuantity").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCartRepository) SetCartItemQuantity(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID, quantity int64) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}

	result, err := r.db.Collection("cart_items").UpdateOne(ctx, pairFilter(userID, productID), update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetCartItemQuantity").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// RemoveCartItem is idempotent. Deleting a pair that is not in the cart is
// not an error.
func (r *MongoDBCartRepository) RemoveCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	_, err := r.db.Collection("cart_items").DeleteOne(ctx, pairFilter(userID, productID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveCartItem").Msg("")
		return err
	}

	return nil
}

func (r *MongoDBCartRepository) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.D{{Key: "user_id", Value: userID}}

	_, err := r.db.Collection("cart_items").DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClearCart").Msg("")
		return err
	}

	return nil
}
