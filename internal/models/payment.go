package models

import "time"

// Payment represents money moved between group members to settle debts.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id" bson:"_id,omitempty"`

	// UserID is the ID of the paying user.
	UserID string `json:"user_id" bson:"user_id"`

	// GroupID is the ID of the group the payment belongs to. Payments are
	// partitioned by group for efficient per-group scans.
	GroupID string `json:"group_id" bson:"group_id"`

	// Amount is the payment amount. Must be positive.
	Amount float64 `json:"amount" bson:"amount"`

	// Description is an optional note (e.g. "Repayment for groceries").
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// PaymentDate is when the payment was made.
	PaymentDate time.Time `json:"payment_date" bson:"payment_date"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

func (p *Payment) DocumentID() string { return p.ID }
func (p *Payment) SetDocumentID(id string) { p.ID = id }
func (p *Payment) CreatedTime() time.Time { return p.CreatedAt }
func (p *Payment) StampCreated(t time.Time) { p.CreatedAt = t }
func (p *Payment) StampUpdated(t time.Time) { p.UpdatedAt = t }
