package models

import "time"

// Group represents a recurring set of people who share expenses, such as
// roommates or a lunch crew. Purchases and payments belong to a group.
//
// Deleting a group does not remove its purchases or payments.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id" bson:"_id,omitempty"`

	// Name is the display name of the group (e.g. "Roommates").
	Name string `json:"name" bson:"name"`

	// Description is an optional longer description.
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// MemberIDs lists the IDs of the users in this group.
	MemberIDs []string `json:"member_ids" bson:"member_ids"`

	// AdminIDs lists the IDs of the members who administer the group.
	AdminIDs []string `json:"admin_ids" bson:"admin_ids"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

func (g *Group) DocumentID() string { return g.ID }
func (g *Group) SetDocumentID(id string) { g.ID = id }
func (g *Group) CreatedTime() time.Time { return g.CreatedAt }
func (g *Group) StampCreated(t time.Time) { g.CreatedAt = t }
func (g *Group) StampUpdated(t time.Time) { g.UpdatedAt = t }
