package mongodb

import (
	"context"

	"github.com/Wichtowski/whobought/internal/models"
)

type groupStore struct {
	repository[models.Group, *models.Group]
}

// FindByMember returns every group the given user belongs to.
func (s *groupStore) FindByMember(ctx context.Context, userID string) ([]models.Group, error) {
	return s.findByField(ctx, "member_ids", userID)
}

// SearchByName matches groups by case-insensitive name substring.
func (s *groupStore) SearchByName(ctx context.Context, name string) ([]models.Group, error) {
	return s.findByContains(ctx, "name", name)
}
