package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Property struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID     string        `bson:"property_id" json:"property_id"`
	Title          string        `bson:"title" json:"title"`
	City           string        `bson:"city" json:"city"`
	Locality       string        `bson:"locality" json:"locality"`
	RentPrice      float64       `bson:"rent_price" json:"rent_price"`
	AreaSqft       int           `bson:"area_sqft" json:"area_sqft"`
	Furnishing     string        `bson:"furnishing" json:"furnishing"` // unfurnished, semi, furnished
	ContactDetails string        `bson:"contact_details" json:"contact_details"`
	ImageURL       string        `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OwnerID        string        `bson:"owner_id" json:"owner_id"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

const (
	FurnishingNone = "unfurnished"
	FurnishingSemi = "semi"
	FurnishingFull = "furnished"
)
