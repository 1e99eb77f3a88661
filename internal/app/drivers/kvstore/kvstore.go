package kvstore

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/shared/memory"
	"medibook-service/internal/app/services/shared/mongostore"
	"medibook-service/internal/app/services/shared/redis"
	minioStorage "medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// NewKeyValueStore picks the backend named by STORAGE_DRIVER. The returned
// close func is nil for backends without a client to release.
func NewKeyValueStore(driverConfig *config.DriverConfig, log *zap.Logger) (contracts.KeyValueStore, func(ctx context.Context) error, error) {
	switch driverConfig.Storage.Driver {
	case constvars.StorageDriverMemory:
		return memory.NewMemoryStore(), nil, nil
	case constvars.StorageDriverRedis:
		client := database.NewRedisClient(driverConfig, log)
		closeFn := func(ctx context.Context) error {
			return client.Close()
		}
		return redis.NewRedisRepository(client), closeFn, nil
	case constvars.StorageDriverMongo:
		db := database.NewMongoDB(driverConfig, log)
		return mongostore.NewMongoStore(db), db.Client().Disconnect, nil
	case constvars.StorageDriverMinio:
		client := storage.NewMinio(driverConfig, log)
		return minioStorage.NewMinioStorage(client, driverConfig.Minio.BucketName), nil, nil
	default:
		return nil, nil, exceptions.ErrStorageUnknownDriver(nil, driverConfig.Storage.Driver)
	}
}
