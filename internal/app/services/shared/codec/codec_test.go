package codec

import (
	"context"
	"errors"
	"medibook-service/internal/app/services/shared/memory"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sample struct {
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Score float64           `json:"score"`
	Meta  map[string]string `json:"meta"`
}

type failingStore struct{ err error }

func (f failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}
func (f failingStore) Set(ctx context.Context, key, value string) error { return f.err }
func (f failingStore) Delete(ctx context.Context, key string) error     { return f.err }

func newTestCodec() *Codec {
	return NewCodec(memory.NewMemoryStore(), "medibook_", zap.NewNop())
}

func TestCodecRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("Struct Slice", func(t *testing.T) {
		c := newTestCodec()
		in := []sample{
			{Name: "a", Tags: []string{"x", "y"}, Score: 4.5, Meta: map[string]string{"k": "v"}},
			{Name: "b", Tags: []string{}, Score: 0},
		}
		require.NoError(t, c.Write(ctx, "things", in))

		out, err := Read(ctx, c, "things", []sample{})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("Scalar", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Write(ctx, "count", 42))

		out, err := Read(ctx, c, "count", 0)
		require.NoError(t, err)
		assert.Equal(t, 42, out)
	})

	t.Run("Write Overwrites", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Write(ctx, "name", "first"))
		require.NoError(t, c.Write(ctx, "name", "second"))

		out, err := Read(ctx, c, "name", "")
		require.NoError(t, err)
		assert.Equal(t, "second", out)
	})

	t.Run("Uses Key Prefix", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Write(ctx, "users", []string{"u"}))

		raw, found, err := c.Store.Get(ctx, "medibook_users")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `["u"]`, raw)
	})
}

func TestCodecDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Untouched Key Returns Default", func(t *testing.T) {
		c := newTestCodec()
		def := []sample{{Name: "default"}}

		out, err := Read(ctx, c, "missing", def)
		require.NoError(t, err)
		assert.Equal(t, def, out)
	})

	t.Run("Corrupted Slot Signals And Falls Back", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Store.Set(ctx, c.Key("users"), "{not json"))

		out, err := Read(ctx, c, "users", []sample{})
		assert.True(t, errors.Is(err, ErrCorrupted))
		assert.Equal(t, []sample{}, out)

		out, err = ReadOrDefault(ctx, c, "users", []sample{})
		assert.NoError(t, err)
		assert.Equal(t, []sample{}, out)
	})

	t.Run("Wrong Shape Is Corruption", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Store.Set(ctx, c.Key("users"), `{"name":"not a list"}`))

		out, err := ReadOrDefault(ctx, c, "users", []sample(nil))
		assert.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("Backend Failure Is Propagated", func(t *testing.T) {
		boom := errors.New("connection refused")
		c := NewCodec(failingStore{err: boom}, "medibook_", zap.NewNop())

		out, err := ReadOrDefault(ctx, c, "users", 7)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 7, out)
		assert.ErrorIs(t, c.Write(ctx, "users", 1), boom)
	})
}

func TestCodecUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Concurrent Appends Are All Kept", func(t *testing.T) {
		c := newTestCodec()
		const writers = 50

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := Update(ctx, c, "names", []string{}, func(names []string) ([]string, bool, error) {
					return append(names, strconv.Itoa(i)), true, nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		out, err := Read(ctx, c, "names", []string{})
		require.NoError(t, err)
		assert.Len(t, out, writers)
	})

	t.Run("Skipped Write Leaves Slot Untouched", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Write(ctx, "names", []string{"a"}))

		err := Update(ctx, c, "names", []string{}, func(names []string) ([]string, bool, error) {
			return nil, false, nil
		})
		require.NoError(t, err)

		out, err := Read(ctx, c, "names", []string{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, out)
	})

	t.Run("Change Error Aborts", func(t *testing.T) {
		c := newTestCodec()
		boom := errors.New("rejected")

		err := Update(ctx, c, "names", []string{}, func(names []string) ([]string, bool, error) {
			return []string{"x"}, true, boom
		})
		assert.ErrorIs(t, err, boom)

		_, found, err := c.Store.Get(ctx, c.Key("names"))
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Strict Update Surfaces Corruption", func(t *testing.T) {
		c := newTestCodec()
		require.NoError(t, c.Store.Set(ctx, c.Key("names"), "{broken"))

		called := false
		err := UpdateStrict(ctx, c, "names", []string{}, func(names []string) ([]string, bool, error) {
			called = true
			return names, true, nil
		})
		assert.ErrorIs(t, err, ErrCorrupted)
		assert.False(t, called)

		err = Update(ctx, c, "names", []string{}, func(names []string) ([]string, bool, error) {
			return append(names, "fresh"), true, nil
		})
		require.NoError(t, err)
		out, err := Read(ctx, c, "names", []string{})
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, out)
	})
}
