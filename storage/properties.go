package storage

import (
	"context"
	"errors"
	"regexp"

	"house-rental-server/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// PropertyFilter holds the optional search parameters of the listing
// endpoint. Zero values mean "not supplied"; price bounds are pointers so a
// zero bound is still a bound.
type PropertyFilter struct {
	Query      string
	City       string
	Furnishing string
	MinPrice   *float64
	MaxPrice   *float64
}

// ToBSON builds the Mongo query document. Substring matches are
// case-insensitive and literal (user input is quoted, not interpreted as a
// regex pattern). Price bounds are inclusive.
func (f PropertyFilter) ToBSON() bson.M {
	query := bson.M{}

	if f.Query != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(f.Query), "$options": "i"}
		query["$or"] = []bson.M{
			{"title": pattern},
			{"city": pattern},
			{"locality": pattern},
		}
	}
	if f.City != "" {
		query["city"] = bson.M{"$regex": regexp.QuoteMeta(f.City), "$options": "i"}
	}
	if f.Furnishing != "" {
		query["furnishing"] = f.Furnishing
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["rent_price"] = price
	}

	return query
}

// CreateProperty inserts a new property document. ErrDuplicate is returned
// when the property_id is already taken.
func (s *Store) CreateProperty(ctx context.Context, property *models.Property) error {
	result, err := s.properties().InsertOne(ctx, property)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}

	property.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// PropertyIDTaken reports whether a property with the given business key
// already exists.
func (s *Store) PropertyIDTaken(ctx context.Context, propertyID string) (bool, error) {
	count, err := s.properties().CountDocuments(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) FindProperties(ctx context.Context, filter PropertyFilter, limit int) ([]models.Property, error) {
	cursor, err := s.properties().Find(ctx, filter.ToBSON(), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ResolveProperty looks a property up by the store id first and falls back
// to the caller-supplied property_id when the reference is not valid
// ObjectID syntax or no document carries that id. The returned filter
// matches exactly the resolved document, so follow-up updates and deletes
// hit the same record.
func (s *Store) ResolveProperty(ctx context.Context, ref string) (*models.Property, bson.M, error) {
	if oid, err := bson.ObjectIDFromHex(ref); err == nil {
		filter := bson.M{"_id": oid}
		var property models.Property
		err := s.properties().FindOne(ctx, filter).Decode(&property)
		if err == nil {
			return &property, filter, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, err
		}
	}

	filter := bson.M{"property_id": ref}
	var property models.Property
	err := s.properties().FindOne(ctx, filter).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return &property, filter, nil
}

// UpdateProperty applies a partial $set update and returns the updated
// document.
func (s *Store) UpdateProperty(ctx context.Context, filter bson.M, set bson.M) (*models.Property, error) {
	if _, err := s.properties().UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.Property
	if err := s.properties().FindOne(ctx, filter).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteProperty(ctx context.Context, filter bson.M) error {
	result, err := s.properties().DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
