package models

import "time"

// Purchase represents a larger outing or shopping trip owned by a user
// within a group, e.g. a pub crawl or a weekly shop. Individual items may
// reference a purchase.
type Purchase struct {
	// ID is the unique identifier for the purchase (UUID format).
	ID string `json:"id" bson:"_id,omitempty"`

	// Name is the display name of the purchase (e.g. "Night Hangout").
	Name string `json:"name" bson:"name"`

	// Description is an optional longer description.
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// UserID is the ID of the user who made the purchase.
	UserID string `json:"user_id" bson:"user_id"`

	// GroupID is the ID of the group the purchase belongs to. Purchases are
	// partitioned by group for efficient per-group scans.
	GroupID string `json:"group_id" bson:"group_id"`

	// PurchaseDate is when the purchase happened.
	PurchaseDate time.Time `json:"purchase_date" bson:"purchase_date"`

	// TotalAmount is the total spent. Must be positive.
	TotalAmount float64 `json:"total_amount" bson:"total_amount"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

func (p *Purchase) DocumentID() string { return p.ID }
func (p *Purchase) SetDocumentID(id string) { p.ID = id }
func (p *Purchase) CreatedTime() time.Time { return p.CreatedAt }
func (p *Purchase) StampCreated(t time.Time) { p.CreatedAt = t }
func (p *Purchase) StampUpdated(t time.Time) { p.UpdatedAt = t }
