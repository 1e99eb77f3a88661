package kvstore

import (
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewKeyValueStore(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := NewKeyValueStore(&config.DriverConfig{Storage: config.Storage{Driver: "memory"}}, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, store)
		assert.Nil(t, closeFn)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		store, _, err := NewKeyValueStore(&config.DriverConfig{Storage: config.Storage{Driver: "sqlite"}}, zap.NewNop())
		assert.Nil(t, store)
		assert.True(t, errors.Is(err, exceptions.ErrStorageUnknownDriver(nil, "sqlite")))
	})
}
