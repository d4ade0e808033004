package models

import "time"

// Item represents a single shared expense: who bought it, how much it cost
// and who it was paid for.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id" bson:"_id,omitempty"`

	// Name is the short name of the item (e.g. "Groceries").
	Name string `json:"name" bson:"name"`

	// Description is an optional longer description.
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// PurchasedBy is the ID of the user who paid.
	PurchasedBy string `json:"purchasedBy" bson:"purchasedBy"`

	// Amount is the price paid. Must be positive.
	Amount float64 `json:"amount" bson:"amount"`

	// PaidFor lists the IDs of the users the item was bought for.
	PaidFor []string `json:"paidFor" bson:"paidFor"`

	// CreatedAt and UpdatedAt are UTC timestamps maintained by the storage
	// layer. UpdatedAt never decreases below CreatedAt.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

func (i *Item) DocumentID() string { return i.ID }
func (i *Item) SetDocumentID(id string) { i.ID = id }
func (i *Item) CreatedTime() time.Time { return i.CreatedAt }
func (i *Item) StampCreated(t time.Time) { i.CreatedAt = t }
func (i *Item) StampUpdated(t time.Time) { i.UpdatedAt = t }
