package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PhoneNumber    string             `bson:"phone_number" json:"phoneNumber"`
	HashedPassword string             `bson:"password" json:"-"`
	FullName       string             `bson:"full_name" json:"fullName"`
	City           string             `bson:"city" json:"city"`
	Location       string             `bson:"location" json:"location"`
}
