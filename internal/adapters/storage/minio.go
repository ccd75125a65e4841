package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"careerhub/internal/config"
	"careerhub/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore stores objects in one S3 bucket
type MinIOStore struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinIOClient creates an S3 client from the storage config
func NewMinIOClient(cfg config.StorageConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return client, nil
}

// Open returns the document and certificate stores.
// Without an endpoint both stores live in memory.
func Open(ctx context.Context, cfg config.StorageConfig) (documents, certificates ObjectStore, err error) {
	if cfg.Endpoint == "" {
		log.Println("⚠️ S3_ENDPOINT not set, using in-memory object store")
		return NewMemoryStore(), NewMemoryStore(), nil
	}

	client, err := NewMinIOClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	docStore := NewMinIOStore(client, cfg.DocumentBucket, cfg.Region)
	certStore := NewMinIOStore(client, cfg.CertificateBucket, cfg.Region)
	for _, s := range []*MinIOStore{docStore, certStore} {
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, nil, err
		}
	}

	log.Printf("✅ Object store connected [%s]", cfg.Endpoint)
	return docStore, certStore, nil
}

// NewMinIOStore wraps one bucket of client
func NewMinIOStore(client *minio.Client, bucket, region string) *MinIOStore {
	return &MinIOStore{client: client, bucket: bucket, region: region}
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
		log.Printf("✅ Bucket created: %s", s.bucket)
	}
	return nil
}

func (s *MinIOStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, opts); err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *MinIOStore) Get(ctx context.Context, key string) (*Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("stat object %s: %w", key, err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}

	return &Object{Key: key, ContentType: info.ContentType, Data: data}, nil
}

func (s *MinIOStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}
