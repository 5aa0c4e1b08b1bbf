// Package kv provides the local key-value persistence layer. Values
// are JSON-serializable; each key holds one serialized blob.
package kv

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when the key has never been written.
var ErrNoKey = errors.New("kv: key not found")

// KV is the interface for a persistent key-value store.
type KV interface {
	// Get retrieves and deserializes the value stored under key into
	// dest. Returns ErrNoKey if the key does not exist.
	Get(ctx context.Context, key string, dest any) error

	// Set serializes value and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// Has reports whether the key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// ListKeys returns all stored keys in sorted order.
	ListKeys(ctx context.Context) ([]string, error)
}
