package mongodb

import (
	"context"

	"github.com/Wichtowski/whobought/internal/models"
)

type paymentStore struct {
	repository[models.Payment, *models.Payment]
}

func (s *paymentStore) ListByGroup(ctx context.Context, groupID string) ([]models.Payment, error) {
	return s.findByField(ctx, "group_id", groupID)
}

func (s *paymentStore) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.findByField(ctx, "user_id", userID)
}
