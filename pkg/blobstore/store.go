// Package blobstore is the persistence port for per-session state: cart
// snapshots, saved addresses, and checkout drafts. Implementations store
// opaque JSON blobs keyed by namespaced strings.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound signals that no value exists under the requested key.
var ErrNotFound = errors.New("blobstore: key not found")

// Store is a minimal key/value surface. Values are serialized JSON; callers
// own the encoding.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
