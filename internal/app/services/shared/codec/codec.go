// Package codec reads and writes JSON values under named storage slots.
package codec

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrCorrupted is wrapped by the error Read returns when a slot holds text
// that does not decode into the requested type.
var ErrCorrupted = errors.New("storage slot corrupted")

type Codec struct {
	Store     contracts.KeyValueStore
	KeyPrefix string
	Log       *zap.Logger

	// locks holds one *sync.Mutex per physical key.
	locks sync.Map
}

func NewCodec(store contracts.KeyValueStore, keyPrefix string, logger *zap.Logger) *Codec {
	return &Codec{
		Store:     store,
		KeyPrefix: keyPrefix,
		Log:       logger,
	}
}

// Key maps a slot name to the physical storage key.
func (c *Codec) Key(slot string) string {
	return c.KeyPrefix + slot
}

// Read returns defaultValue when the slot is missing. A slot that fails to
// decode also yields defaultValue, together with an error wrapping
// ErrCorrupted. Backend failures are returned as they are.
func Read[T any](ctx context.Context, c *Codec, slot string, defaultValue T) (T, error) {
	key := c.Key(slot)
	raw, found, err := c.Store.Get(ctx, key)
	if err != nil {
		return defaultValue, err
	}
	if !found || raw == "" {
		return defaultValue, nil
	}

	var value T
	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		return defaultValue, exceptions.ErrStorageCorrupted(fmt.Errorf("%w: %v", ErrCorrupted, err), key)
	}
	return value, nil
}

// ReadOrDefault is Read with a soft fallback: a corrupted slot is
// logged and treated as holding defaultValue.
func ReadOrDefault[T any](ctx context.Context, c *Codec, slot string, defaultValue T) (T, error) {
	value, err := Read(ctx, c, slot, defaultValue)
	if err != nil && errors.Is(err, ErrCorrupted) {
		c.Log.Warn("codec.ReadOrDefault falling back to default value",
			zap.String(constvars.LoggingStorageKey, c.Key(slot)),
			zap.Error(err),
		)
		return defaultValue, nil
	}
	return value, err
}

// Write replaces the slot with the JSON encoding of value.
func (c *Codec) Write(ctx context.Context, slot string, value interface{}) error {
	key := c.Key(slot)
	data, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return c.Store.Set(ctx, key, string(data))
}

// Update runs a read-change-write cycle on one slot while holding that
// slot's lock, so concurrent updates through the same Codec never drop each
// other's changes. change receives the current value (defaultValue when the
// slot is missing or corrupted) and reports whether the result should be
// written back. An error from change aborts the cycle without writing.
func Update[T any](ctx context.Context, c *Codec, slot string, defaultValue T, change func(value T) (T, bool, error)) error {
	return update(ctx, c, slot, defaultValue, ReadOrDefault[T], change)
}

// UpdateStrict is Update for slots whose corruption must surface: a slot
// that fails to decode aborts the cycle with the error Read returns.
func UpdateStrict[T any](ctx context.Context, c *Codec, slot string, defaultValue T, change func(value T) (T, bool, error)) error {
	return update(ctx, c, slot, defaultValue, Read[T], change)
}

func update[T any](
	ctx context.Context,
	c *Codec,
	slot string,
	defaultValue T,
	read func(ctx context.Context, c *Codec, slot string, defaultValue T) (T, error),
	change func(value T) (T, bool, error),
) error {
	unlock := c.lock(slot)
	defer unlock()

	current, err := read(ctx, c, slot, defaultValue)
	if err != nil {
		return err
	}

	next, write, err := change(current)
	if err != nil || !write {
		return err
	}
	return c.Write(ctx, slot, next)
}

func (c *Codec) lock(slot string) func() {
	value, _ := c.locks.LoadOrStore(c.Key(slot), new(sync.Mutex))
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
