// Package mongodb provides a MongoDB-backed implementation of the
// storage.Store interface. Each entity type lives in its own collection.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const connectTimeout = 10 * time.Second

// Config names the database and the collection per entity type.
type Config struct {
	URI       string
	Database  string
	Users     string
	Items     string
	Groups    string
	Purchases string
	Payments  string
}

// Store implements storage.Store using MongoDB. The client handle is owned
// by the caller's process context and shared read-only after construction;
// there is no lazily-initialized singleton.
type Store struct {
	client *mongo.Client

	users     *userStore
	items     *itemStore
	groups    *groupStore
	purchases *purchaseStore
	payments  *paymentStore
}

// New connects to MongoDB, verifies the connection, and prepares the
// per-entity collections and their indexes.
func New(ctx context.Context, cfg Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	db := client.Database(cfg.Database)
	s := &Store{
		client:    client,
		users:     &userStore{repository[models.User, *models.User]{col: db.Collection(cfg.Users)}},
		items:     &itemStore{repository[models.Item, *models.Item]{col: db.Collection(cfg.Items)}},
		groups:    &groupStore{repository[models.Group, *models.Group]{col: db.Collection(cfg.Groups)}},
		purchases: &purchaseStore{repository[models.Purchase, *models.Purchase]{col: db.Collection(cfg.Purchases)}},
		payments:  &paymentStore{repository[models.Payment, *models.Payment]{col: db.Collection(cfg.Payments)}},
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return s, nil
}

// ensureIndexes creates the unique indexes that close the username/email
// registration race at the storage level, plus the per-group secondary
// indexes that make group-scoped scans cheap.
func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.users.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	groupOwned := []*mongo.Collection{s.purchases.col, s.payments.col}
	for _, col := range groupOwned {
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "group_id", Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	_, err = s.items.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "purchasedBy", Value: 1}},
	})
	return err
}

func (s *Store) Users() storage.UserStore         { return s.users }
func (s *Store) Items() storage.ItemStore         { return s.items }
func (s *Store) Groups() storage.GroupStore       { return s.groups }
func (s *Store) Purchases() storage.PurchaseStore { return s.purchases }
func (s *Store) Payments() storage.PaymentStore   { return s.payments }

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &storage.StorageError{Op: "ping", Err: err}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
