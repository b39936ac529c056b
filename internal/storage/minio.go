package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"quickcal/internal/config"
)

type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO connects to the calendar bucket, creating it on first run.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("calendar bucket client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("calendar bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create calendar bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

func (m *minioStorage) Put(ctx context.Context, f CalendarFile) (StoredFile, error) {
	info, err := m.client.PutObject(ctx, m.bucket, f.Key, bytes.NewReader(f.Body), int64(len(f.Body)), putOptions(f))
	if err != nil {
		return StoredFile{}, err
	}
	return StoredFile{Key: f.Key, Size: info.Size, ETag: info.ETag}, nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, downloadParams(key))
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// putOptions tags the object with the originating request so a stored file
// can be traced back to its history row.
func putOptions(f CalendarFile) minio.PutObjectOptions {
	opts := minio.PutObjectOptions{ContentType: CalendarContentType}
	if f.RequestID != "" {
		opts.UserMetadata = map[string]string{"request-id": f.RequestID}
	}
	return opts
}

// downloadParams makes browsers save the link as event-<id>.ics instead of
// rendering it inline.
func downloadParams(key string) url.Values {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", "event-"+path.Base(key)))
	params.Set("response-content-type", CalendarContentType)
	return params
}
