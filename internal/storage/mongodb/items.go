package mongodb

import (
	"context"

	"github.com/Wichtowski/whobought/internal/models"
)

type itemStore struct {
	repository[models.Item, *models.Item]
}

// FindByPurchaser returns items bought by the given user.
func (s *itemStore) FindByPurchaser(ctx context.Context, userID string) ([]models.Item, error) {
	return s.findByField(ctx, "purchasedBy", userID)
}

// FindPaidFor returns items whose paidFor list contains the given user.
func (s *itemStore) FindPaidFor(ctx context.Context, userID string) ([]models.Item, error) {
	return s.findByField(ctx, "paidFor", userID)
}

// SearchByName matches items by case-insensitive name substring.
func (s *itemStore) SearchByName(ctx context.Context, name string) ([]models.Item, error) {
	return s.findByContains(ctx, "name", name)
}
