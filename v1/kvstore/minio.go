package kvstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore reads descriptors stored as objects in one bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore wraps an existing client.
func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

// NewMinioClient builds a client for cfg.
func NewMinioClient(cfg MinioConfig) (*minio.Client, error) {
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: failed to create minio client: %w", err)
	}
	return c, nil
}

func (s *MinioStore) Get(ctx context.Context, key string) (*Record, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return minioResult(key, nil, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	return minioResult(key, data, err)
}

// Put uploads value as the object named key.
func (s *MinioStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

// minioResult maps a missing object to an absent record. GetObject is lazy,
// so NoSuchKey usually surfaces from the first read.
func minioResult(key string, data []byte, err error) (*Record, error) {
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, fmt.Errorf("kvstore: minio get %s: %w", key, err)
	}
	return &Record{Key: key, Value: data}, nil
}
