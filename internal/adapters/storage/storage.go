package storage

import (
	"context"
	"io"
)

// ObjectStore keeps document and certificate files by key within one bucket.
// Get returns domain.ErrObjectNotFound for unknown keys.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// Object is a fetched file
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}
