package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when no value is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is a durable key-value backing holding one serialized record per key.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
