package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Wichtowski/whobought/internal/models"
)

type userStore struct {
	*collection[models.User, *models.User]
}

// Create enforces username/email uniqueness under the collection lock, the
// way the MongoDB backend's unique indexes do.
func (s *userStore) Create(ctx context.Context, user *models.User) error {
	return s.createUnique(ctx, user, func(u *models.User) bool {
		return u.Username == user.Username || u.Email == user.Email
	})
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(func(u *models.User) bool { return u.Username == username }), nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(func(u *models.User) bool { return u.Email == email }), nil
}

type itemStore struct {
	*collection[models.Item, *models.Item]
}

func (s *itemStore) FindByPurchaser(ctx context.Context, userID string) ([]models.Item, error) {
	return s.find(func(i *models.Item) bool { return i.PurchasedBy == userID }), nil
}

func (s *itemStore) FindPaidFor(ctx context.Context, userID string) ([]models.Item, error) {
	return s.find(func(i *models.Item) bool { return slices.Contains(i.PaidFor, userID) }), nil
}

func (s *itemStore) SearchByName(ctx context.Context, name string) ([]models.Item, error) {
	needle := strings.ToLower(name)
	return s.find(func(i *models.Item) bool {
		return strings.Contains(strings.ToLower(i.Name), needle)
	}), nil
}

type groupStore struct {
	*collection[models.Group, *models.Group]
}

func (s *groupStore) FindByMember(ctx context.Context, userID string) ([]models.Group, error) {
	return s.find(func(g *models.Group) bool { return slices.Contains(g.MemberIDs, userID) }), nil
}

func (s *groupStore) SearchByName(ctx context.Context, name string) ([]models.Group, error) {
	needle := strings.ToLower(name)
	return s.find(func(g *models.Group) bool {
		return strings.Contains(strings.ToLower(g.Name), needle)
	}), nil
}

type purchaseStore struct {
	*collection[models.Purchase, *models.Purchase]
}

func (s *purchaseStore) ListByGroup(ctx context.Context, groupID string) ([]models.Purchase, error) {
	return s.find(func(p *models.Purchase) bool { return p.GroupID == groupID }), nil
}

func (s *purchaseStore) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	return s.find(func(p *models.Purchase) bool { return p.UserID == userID }), nil
}

func (s *purchaseStore) ListByGroupBetween(ctx context.Context, groupID string, from, to time.Time) ([]models.Purchase, error) {
	return s.find(func(p *models.Purchase) bool {
		return p.GroupID == groupID && !p.PurchaseDate.Before(from) && !p.PurchaseDate.After(to)
	}), nil
}

type paymentStore struct {
	*collection[models.Payment, *models.Payment]
}

func (s *paymentStore) ListByGroup(ctx context.Context, groupID string) ([]models.Payment, error) {
	return s.find(func(p *models.Payment) bool { return p.GroupID == groupID }), nil
}

func (s *paymentStore) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.find(func(p *models.Payment) bool { return p.UserID == userID }), nil
}
