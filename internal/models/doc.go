// Package models defines the core domain documents for WhoBought.
//
// Every entity is stored as a JSON-like document in its own collection:
//   - User: a registered account (unique username and email)
//   - Item: a single shared expense ("who bought what")
//   - Group: a recurring set of people who share expenses
//   - Purchase: a larger outing owned by a user within a group
//   - Payment: money moved between members to settle up
//
// Relationships use ID strings rather than embedded documents, matching the
// schemaless storage layout. Each document carries its own identifier and
// UTC timestamps; the storage layer assigns both at creation and refreshes
// updatedAt on every write through the shared Document contract below.
package models

import "time"

// Document is the contract every stored entity satisfies so the generic
// repository can assign identifiers and maintain timestamps without knowing
// the concrete type.
type Document interface {
	// DocumentID returns the document identifier, empty if unassigned.
	DocumentID() string

	// SetDocumentID assigns the document identifier.
	SetDocumentID(id string)

	// CreatedTime returns the creation timestamp.
	CreatedTime() time.Time

	// StampCreated sets the creation timestamp.
	StampCreated(t time.Time)

	// StampUpdated sets the last-update timestamp. Entities that only track
	// creation time implement this as a no-op.
	StampUpdated(t time.Time)
}
