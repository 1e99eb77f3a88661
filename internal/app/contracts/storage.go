package contracts

import "context"

// KeyValueStore is the raw slot storage every collection is persisted in.
// Get reports found=false for a key that was never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
