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

type MongoDBUserRepository struct {
	db *mongo.Database
}

func CreateUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepository{db: db}
}

func (r *MongoDBUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, errs.ErrPhoneAlreadyUsed
		}
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepository) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (user domain.User, err error) {
	filter := bson.D{{Key: "phone_number", Value: phoneNumber}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByPhoneNumber").Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users []domain.User, err error) {
	if len(ids) == 0 {
		return users, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.db.Collection("users").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &users); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	return users, nil
}

func (r *MongoDBUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName string, city string, location string) error {
	filter := bson.D{{Key: "_id", Value: id}}

	// Absent request fields are written as empty strings, matching the
	// store's overwrite semantics for profile updates.
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "full_name", Value: fullName},
		{Key: "city", Value: city},
		{Key: "location", Value: location},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProfile").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
