package storage

import (
	"context"

	"house-rental-server/models"
)

// CreateContactMessage stores a renter-to-owner message. The caller is
// responsible for verifying the referenced property exists first.
func (s *Store) CreateContactMessage(ctx context.Context, message *models.ContactMessage) error {
	_, err := s.contactMessages().InsertOne(ctx, message)
	return err
}
