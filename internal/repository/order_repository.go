package repository

import (
	"context"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrderRepository struct {
	db *mongo.Database
}

func CreateOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepository{db: db}
}

func (r *MongoDBOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBOrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (order domain.Order, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return order, err
	}

	return order, nil
}

func (r *MongoDBOrderRepository) GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	return orders, nil
}

func (r *MongoDBOrderRepository) GetOrders(ctx context.Context) (orders []domain.Order, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return orders, nil
}

func (r *MongoDBOrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
