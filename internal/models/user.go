package models

import "time"

// User represents a registered user account.
//
// Username and email are unique across users; the storage layer enforces
// this with unique indexes so concurrent registrations cannot both commit.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id" bson:"_id,omitempty"`

	// Username is the unique login name.
	Username string `json:"username" bson:"username"`

	// Email is the user's email address (unique).
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt digest of the user's password. It never
	// leaves the persistence boundary: excluded from JSON, only bson.
	PasswordHash string `json:"-" bson:"hashed_password,omitempty"`

	// CreatedAt is the UTC time the account was created.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
}

func (u *User) DocumentID() string { return u.ID }
func (u *User) SetDocumentID(id string) { u.ID = id }
func (u *User) CreatedTime() time.Time { return u.CreatedAt }
func (u *User) StampCreated(t time.Time) { u.CreatedAt = t }
func (u *User) StampUpdated(t time.Time) {} // users only track creation time
