package storage

import (
	"errors"
	"fmt"
)

// ErrConflict reports a uniqueness violation, e.g. inserting a user whose
// username or email already exists. Backends translate their native
// duplicate-key errors to it.
var ErrConflict = errors.New("storage: unique constraint violated")

// StorageError wraps a backend failure with the operation that produced it.
// Not-found conditions are never StorageErrors; they are absent results.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
