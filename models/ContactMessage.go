package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ContactMessage struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID  string        `bson:"property_id" json:"property_id"`
	SenderID    string        `bson:"sender_id" json:"sender_id"`
	SenderName  string        `bson:"sender_name" json:"sender_name"`
	SenderEmail string        `bson:"sender_email" json:"sender_email"`
	Message     string        `bson:"message" json:"message"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}
