package storage

import (
	"context"
	"errors"

	"house-rental-server/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CreateUser inserts a new user document. The password must already be
// hashed by the caller. ErrDuplicate is returned when the username is taken.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	result, err := s.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}

	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
