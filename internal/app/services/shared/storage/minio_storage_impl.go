package storage

import (
	"context"
	"io"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"strings"

	"github.com/minio/minio-go/v7"
)

const minioNoSuchKey = "NoSuchKey"

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

// NewMinioStorage stores each slot as a JSON object named after the key.
func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.KeyValueStore {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Get(ctx context.Context, key string) (string, bool, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return m.handleGetError(err, key)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return m.handleGetError(err, key)
	}
	return string(data), true, nil
}

func (m *minioStorage) handleGetError(err error, key string) (string, bool, error) {
	if minio.ToErrorResponse(err).Code == minioNoSuchKey {
		return "", false, nil
	}
	return "", false, exceptions.ErrStorageGet(err, key)
}

func (m *minioStorage) Set(ctx context.Context, key, value string) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		key,
		strings.NewReader(value),
		int64(len(value)),
		minio.PutObjectOptions{
			ContentType: constvars.MinioObjectContentType,
		},
	)
	if err != nil {
		return exceptions.ErrStorageSet(err, key)
	}
	return nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}
