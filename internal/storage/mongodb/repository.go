package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/storage"
)

// document constrains P to a pointer to an entity struct satisfying the
// models.Document contract, so the repository can stamp identifiers and
// timestamps without knowing the concrete type.
type document[T any] interface {
	*T
	models.Document
}

// repository is the generic CRUD and query core shared by every entity
// store. One instance wraps one collection. All filters are bson documents;
// values are never interpolated into query text.
type repository[T any, P document[T]] struct {
	col *mongo.Collection
}

// List returns every document in the collection, newest first.
func (r *repository[T, P]) List(ctx context.Context) ([]T, error) {
	return r.findByFilter(ctx, bson.M{})
}

// Get returns the document with the given id, or nil if none exists.
func (r *repository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &storage.StorageError{Op: "get", Err: err}
	}
	return &doc, nil
}

// Create inserts the document, assigning a UUID if it has none and stamping
// UTC creation/update timestamps.
func (r *repository[T, P]) Create(ctx context.Context, doc P) error {
	if doc.DocumentID() == "" {
		doc.SetDocumentID(uuid.NewString())
	}
	now := time.Now().UTC()
	doc.StampCreated(now)
	doc.StampUpdated(now)

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrConflict
		}
		return &storage.StorageError{Op: "create", Err: err}
	}
	return nil
}

// Update replaces the document with the given id. The stored id and
// creation timestamp always win over whatever the caller supplied. Returns
// nil without writing when the id does not exist.
func (r *repository[T, P]) Update(ctx context.Context, id string, doc P) (*T, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	doc.SetDocumentID(id)
	doc.StampCreated(P(existing).CreatedTime())
	doc.StampUpdated(time.Now().UTC())

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrConflict
		}
		return nil, &storage.StorageError{Op: "update", Err: err}
	}
	return (*T)(doc), nil
}

// Delete removes the document with the given id, reporting whether anything
// was removed.
func (r *repository[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, &storage.StorageError{Op: "delete", Err: err}
	}
	return res.DeletedCount > 0, nil
}

// findByField matches documents whose field equals value. On array-valued
// fields this is a membership test, which is exactly what the per-entity
// finders want.
func (r *repository[T, P]) findByField(ctx context.Context, field string, value any) ([]T, error) {
	return r.findByFilter(ctx, bson.M{field: value})
}

// findOneByField returns the first equality match, or nil if none.
func (r *repository[T, P]) findOneByField(ctx context.Context, field string, value any) (*T, error) {
	var doc T
	err := r.col.FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &storage.StorageError{Op: "find", Err: err}
	}
	return &doc, nil
}

// findByContains matches documents whose string field contains needle,
// case-insensitively. The needle is escaped so it matches literally.
func (r *repository[T, P]) findByContains(ctx context.Context, field, needle string) ([]T, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}
	return r.findByFilter(ctx, bson.M{field: pattern})
}

func (r *repository[T, P]) findByFilter(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, &storage.StorageError{Op: "find", Err: err}
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &storage.StorageError{Op: "find", Err: err}
	}
	return docs, nil
}
