// Package storage provides abstractions for persistent document storage.
package storage

import (
	"context"
	"time"

	"github.com/Wichtowski/whobought/internal/models"
)

// Store aggregates the typed per-entity stores. This abstraction allows
// swapping storage backends (MongoDB in production, an in-memory fake in
// tests) without changing the handler layer.
//
// Shared semantics for every entity store:
//   - Create assigns a UUID if the document has none and stamps UTC
//     creation/update timestamps.
//   - Get of an unknown id returns (nil, nil): not-found is an absent
//     result, not an error.
//   - Update of an unknown id returns (nil, nil) and performs no write;
//     otherwise it preserves the original id and creation timestamp and
//     stamps a fresh update timestamp.
//   - Delete reports whether a document was actually removed.
//   - List returns documents ordered by creation time descending.
//   - Backend failures surface as *StorageError; uniqueness violations as
//     ErrConflict.
type Store interface {
	Users() UserStore
	Items() ItemStore
	Groups() GroupStore
	Purchases() PurchaseStore
	Payments() PaymentStore

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// UserStore persists user accounts.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)

	// FindByUsername and FindByEmail are equality lookups on the unique
	// fields; an absent user is (nil, nil).
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ItemStore persists shared-expense items.
type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id string, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id string) (bool, error)

	// FindByPurchaser returns items bought by the given user.
	FindByPurchaser(ctx context.Context, userID string) ([]models.Item, error)

	// FindPaidFor returns items whose paidFor list contains the given user.
	FindPaidFor(ctx context.Context, userID string) ([]models.Item, error)

	// SearchByName matches items whose name contains the given substring,
	// case-insensitively.
	SearchByName(ctx context.Context, name string) ([]models.Item, error)
}

// GroupStore persists groups.
type GroupStore interface {
	List(ctx context.Context) ([]models.Group, error)
	Get(ctx context.Context, id string) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, id string, group *models.Group) (*models.Group, error)
	Delete(ctx context.Context, id string) (bool, error)

	// FindByMember returns groups whose member list contains the given user.
	FindByMember(ctx context.Context, userID string) ([]models.Group, error)

	// SearchByName matches groups by case-insensitive name substring.
	SearchByName(ctx context.Context, name string) ([]models.Group, error)
}

// PurchaseStore persists purchases, partitioned by owning group.
type PurchaseStore interface {
	List(ctx context.Context) ([]models.Purchase, error)
	Get(ctx context.Context, id string) (*models.Purchase, error)
	Create(ctx context.Context, purchase *models.Purchase) error
	Update(ctx context.Context, id string, purchase *models.Purchase) (*models.Purchase, error)
	Delete(ctx context.Context, id string) (bool, error)

	ListByGroup(ctx context.Context, groupID string) ([]models.Purchase, error)
	ListByUser(ctx context.Context, userID string) ([]models.Purchase, error)

	// ListByGroupBetween returns a group's purchases whose purchase date
	// falls within [from, to].
	ListByGroupBetween(ctx context.Context, groupID string, from, to time.Time) ([]models.Purchase, error)
}

// PaymentStore persists settlement payments, partitioned by owning group.
type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	Get(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, id string, payment *models.Payment) (*models.Payment, error)
	Delete(ctx context.Context, id string) (bool, error)

	ListByGroup(ctx context.Context, groupID string) ([]models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Payment, error)
}
