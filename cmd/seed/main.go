package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/drivers/kvstore"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/services/core/seed"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Seeds a persistent backend ahead of the first server start. The memory
// driver is rejected since nothing would outlive the process.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	if driverConfig.Storage.Driver == constvars.StorageDriverMemory {
		log.Fatal("Seeding needs a persistent storage driver", zap.String("driver", driverConfig.Storage.Driver))
	}

	store, storageClose, err := kvstore.NewKeyValueStore(driverConfig, log)
	if err != nil {
		log.Fatal("Error initializing storage backend", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storageCodec := codec.NewCodec(store, driverConfig.Storage.KeyPrefix, log)
	seeded, err := seed.NewLoader(storageCodec, users.NewUserStorageRepository(storageCodec), log).EnsureSeeded(ctx)
	if err != nil {
		log.Fatal("Error seeding storage", zap.Error(err))
	}
	log.Info("Seed finished", zap.Bool("seeded", seeded))

	if storageClose != nil {
		err = storageClose(ctx)
		if err != nil {
			log.Error("Error closing storage backend", zap.Error(err))
		}
	}
}
