package mongodb

import (
	"context"

	"github.com/Wichtowski/whobought/internal/models"
)

// userStore adapts the generic repository to user-specific lookups on the
// unique username and email fields.
type userStore struct {
	repository[models.User, *models.User]
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOneByField(ctx, "username", username)
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOneByField(ctx, "email", email)
}
