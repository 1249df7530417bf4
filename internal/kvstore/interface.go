package kvstore

import "context"

// Store is durable per-device key-value persistence. Values are opaque
// byte slices; callers layer their own (de)serialization on top.
type Store interface {
	// Get returns the value stored under key, or common.ErrorNotFound
	// if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Update performs an atomic read-modify-write of the value under key.
	// fn receives the current value (nil if the key is absent) and returns
	// the value to store. If fn returns an error, nothing is written.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
