package settings

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when no row exists for a key.
var ErrNotFound = errors.New("setting not found")

// Store is the key/value backend holding the settings rows.
type Store interface {
	// Get returns the row for key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Setting, error)
	// Upsert inserts the row or overwrites the value of an existing key.
	Upsert(ctx context.Context, key, value string) error
	// List returns every row ordered by key.
	List(ctx context.Context) ([]Setting, error)
	Ping(ctx context.Context) error
}
