// Package memory provides an in-memory implementation of storage.Store with
// the same document semantics as the MongoDB backend. It exists so the
// handler and auth layers can be tested without a running database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

type document[T any] interface {
	*T
	models.Document
}

type entry[T any] struct {
	doc T
	seq uint64
}

// collection is the in-memory counterpart of the generic MongoDB
// repository: same identifier assignment, timestamp stamping, and
// newest-first ordering, backed by a locked map.
type collection[T any, P document[T]] struct {
	mu   sync.RWMutex
	docs map[string]entry[T]
	seq  uint64
}

func newCollection[T any, P document[T]]() *collection[T, P] {
	return &collection[T, P]{docs: make(map[string]entry[T])}
}

func (c *collection[T, P]) List(ctx context.Context) ([]T, error) {
	return c.find(func(P) bool { return true }), nil
}

func (c *collection[T, P]) Get(ctx context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.docs[id]
	if !ok {
		return nil, nil
	}
	doc := e.doc
	return &doc, nil
}

func (c *collection[T, P]) Create(ctx context.Context, doc P) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createLocked(doc)
}

// createUnique rejects the insert with ErrConflict when any stored document
// matches the conflict predicate. Check and insert happen under one lock,
// mirroring the unique-index guarantee of the MongoDB backend.
func (c *collection[T, P]) createUnique(ctx context.Context, doc P, conflicts func(P) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.docs {
		d := e.doc
		if conflicts(&d) {
			return storage.ErrConflict
		}
	}
	return c.createLocked(doc)
}

func (c *collection[T, P]) createLocked(doc P) error {
	if doc.DocumentID() == "" {
		doc.SetDocumentID(uuid.NewString())
	}
	now := time.Now().UTC()
	doc.StampCreated(now)
	doc.StampUpdated(now)

	if _, exists := c.docs[doc.DocumentID()]; exists {
		return storage.ErrConflict
	}
	c.seq++
	c.docs[doc.DocumentID()] = entry[T]{doc: *(*T)(doc), seq: c.seq}
	return nil
}

func (c *collection[T, P]) Update(ctx context.Context, id string, doc P) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.docs[id]
	if !ok {
		return nil, nil
	}

	existing := e.doc
	doc.SetDocumentID(id)
	doc.StampCreated(P(&existing).CreatedTime())
	doc.StampUpdated(time.Now().UTC())

	c.docs[id] = entry[T]{doc: *(*T)(doc), seq: e.seq}
	out := *(*T)(doc)
	return &out, nil
}

func (c *collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return false, nil
	}
	delete(c.docs, id)
	return true, nil
}

// find returns matching documents newest first, breaking creation-time ties
// by insertion order so results are stable within a single timestamp tick.
func (c *collection[T, P]) find(match func(P) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	type hit struct {
		doc     T
		created time.Time
		seq     uint64
	}
	var hits []hit
	for _, e := range c.docs {
		doc := e.doc
		if match(&doc) {
			hits = append(hits, hit{doc: doc, created: P(&doc).CreatedTime(), seq: e.seq})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].created.Equal(hits[j].created) {
			return hits[i].created.After(hits[j].created)
		}
		return hits[i].seq > hits[j].seq
	})

	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.doc
	}
	return out
}

func (c *collection[T, P]) findOne(match func(P) bool) *T {
	docs := c.find(match)
	if len(docs) == 0 {
		return nil
	}
	return &docs[0]
}

// Store implements storage.Store entirely in memory.
type Store struct {
	users     *userStore
	items     *itemStore
	groups    *groupStore
	purchases *purchaseStore
	payments  *paymentStore
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:     &userStore{newCollection[models.User, *models.User]()},
		items:     &itemStore{newCollection[models.Item, *models.Item]()},
		groups:    &groupStore{newCollection[models.Group, *models.Group]()},
		purchases: &purchaseStore{newCollection[models.Purchase, *models.Purchase]()},
		payments:  &paymentStore{newCollection[models.Payment, *models.Payment]()},
	}
}

func (s *Store) Users() storage.UserStore         { return s.users }
func (s *Store) Items() storage.ItemStore         { return s.items }
func (s *Store) Groups() storage.GroupStore       { return s.groups }
func (s *Store) Purchases() storage.PurchaseStore { return s.purchases }
func (s *Store) Payments() storage.PaymentStore   { return s.payments }

func (s *Store) Ping(ctx context.Context) error  { return nil }
func (s *Store) Close(ctx context.Context) error { return nil }
