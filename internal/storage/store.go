// ABOUTME: Store interface for liftlog's key/value persistence.
// ABOUTME: Backends hold opaque JSON values under string keys.
package storage

import "errors"

// ErrNotFound is returned by Get when a key is absent.
var ErrNotFound = errors.New("key not found")

// Store is a small durable key/value store. Implementations must be safe
// for use by a single process; values are copied in and out.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
