package ports

import (
	"context"
	"errors"
)

// Storage keys for the two persisted client records.
const (
	KeyAuthUser = "bakeryhub.auth.user"
	KeyCart     = "bakeryhub.cart"
)

// ErrKeyNotFound is returned by Load when the key has never been saved or was
// cleared.
var ErrKeyNotFound = errors.New("storage key not found")

// KeyValueStore is the persistence port backing session and cart state.
// The browser original used local storage; adapters here are file, memory and
// Redis backed. Values are opaque JSON blobs owned by the caller.
type KeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
