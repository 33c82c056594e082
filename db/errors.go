package db

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var errMissingURI = errors.New("connection string is empty")

// ErrNotConnected is returned when a store operation is attempted before a
// successful Connect (or after Close).
var ErrNotConnected = errors.New("store not connected, call Connect first")

// ConnectionError means the store was unreachable or failed its liveness
// check. The caller may retry after backoff; this package never retries.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DuplicateError means an insert was rejected by a uniqueness constraint.
type DuplicateError struct {
	Err error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate document: %v", e.Err)
}

func (e *DuplicateError) Unwrap() error { return e.Err }

// StoreError wraps any persistence fault not otherwise classified.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ClassifyWriteErr maps a driver write error onto the taxonomy.
func ClassifyWriteErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateError{Err: err}
	}
	return &StoreError{Op: op, Err: err}
}
