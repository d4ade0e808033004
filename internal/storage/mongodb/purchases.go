package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Wichtowski/whobought/internal/models"
)

type purchaseStore struct {
	repository[models.Purchase, *models.Purchase]
}

func (s *purchaseStore) ListByGroup(ctx context.Context, groupID string) ([]models.Purchase, error) {
	return s.findByField(ctx, "group_id", groupID)
}

func (s *purchaseStore) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	return s.findByField(ctx, "user_id", userID)
}

// ListByGroupBetween returns a group's purchases dated within [from, to].
func (s *purchaseStore) ListByGroupBetween(ctx context.Context, groupID string, from, to time.Time) ([]models.Purchase, error) {
	return s.findByFilter(ctx, bson.M{
		"group_id":      groupID,
		"purchase_date": bson.M{"$gte": from, "$lte": to},
	})
}
