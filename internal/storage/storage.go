package storage

import "context"

// Storage is the durable local persistence boundary for cart and session
// state. Keys are short names ("cart", "session") scoped by the backend's
// configured namespace. A missing key is reported through the bool, not
// an error, so callers can treat absence as empty state.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
