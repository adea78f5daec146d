package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username       string        `bson:"username" json:"username"`
	Email          string        `bson:"email" json:"email"`
	Role           string        `bson:"role" json:"role"` // customer, landlord
	HashedPassword string        `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
}

const (
	RoleCustomer = "customer"
	RoleLandlord = "landlord"
)
