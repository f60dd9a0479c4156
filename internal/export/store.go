package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/secforge/secforge/internal/config"
	"github.com/secforge/secforge/internal/resilience"
	"github.com/secforge/secforge/pkg/models"
)

// Uploader stores an object and returns its location.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// bucketClient is the part of *minio.Client that ObjectStore uses.
type bucketClient interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ObjectStore uploads archives to an S3-compatible bucket.
type ObjectStore struct {
	client bucketClient
	bucket string
	region string
	retry  resilience.Policy

	mu    sync.Mutex
	ready bool
}

// Compile-time interface compliance checks.
var (
	_ Uploader     = (*ObjectStore)(nil)
	_ bucketClient = (*minio.Client)(nil)
)

// NewObjectStore creates a store for cfg. The bucket is created on first
// upload; uploads retry transient failures with resilience.DefaultPolicy.
func NewObjectStore(cfg config.StorageConfig) (*ObjectStore, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	region := cfg.Region
	if region == "" {
		region = config.DefaultS3Region
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &ObjectStore{
		client: client,
		bucket: cfg.Bucket,
		region: region,
		retry:  resilience.DefaultPolicy(),
	}, nil
}

// ensureBucket creates the bucket if needed. Only success is remembered, so
// a failed check is tried again on the next attempt with that attempt's ctx.
func (s *ObjectStore) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("ensure bucket: %w", err)
		}
	}
	s.ready = true
	return nil
}

// Upload stores data under key and returns "bucket/key". The bucket check
// and the put share one retry loop; 4xx responses are not retried.
func (s *ObjectStore) Upload(ctx context.Context, key string, data []byte) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}

	err := resilience.Retry(ctx, s.retry, func(ctx context.Context) error {
		if err := s.ensureBucket(ctx); err != nil {
			return classify(err)
		}
		_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/zip",
		})
		return classify(err)
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return s.bucket + "/" + key, nil
}

// classify marks S3 client errors (4xx) as permanent.
func classify(err error) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return resilience.Permanent(err)
	}
	return err
}

// Publish zips p and uploads it under prefix/<name>.zip.
func Publish(ctx context.Context, u Uploader, prefix string, p *models.Project) (string, error) {
	data, err := ZipBytes(p)
	if err != nil {
		return "", err
	}
	key := ArchiveName(p)
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}
	return u.Upload(ctx, key, data)
}
