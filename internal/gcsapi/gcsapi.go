// Package gcsapi defines interfaces over the Cloud Storage SDK to enable testing and mocking.
package gcsapi

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
)

// ObjectIterator yields object metadata one record at a time, fetching further
// response pages from the backend as needed. Next returns iterator.Done after
// the final record.
type ObjectIterator interface {
	Next() (*storage.ObjectAttrs, error)
}

// StoreAPI defines the interface for the store operations used by this module.
// This interface allows for mocking in tests and potential future implementations.
type StoreAPI interface {
	// Objects lists the objects of a bucket matching the query
	Objects(ctx context.Context, bucket string, q *storage.Query) ObjectIterator

	// NewRangeReader opens a reader over [offset, offset+length) of an object.
	// A negative length reads to the end of the object.
	NewRangeReader(ctx context.Context, bucket, key string, offset, length int64) (io.ReadCloser, error)

	// Close releases the underlying session
	Close() error
}

// Store adapts a *storage.Client to StoreAPI.
type Store struct {
	client *storage.Client
}

// NewStore wraps a Cloud Storage client.
func NewStore(client *storage.Client) *Store {
	return &Store{client: client}
}

// Objects implements StoreAPI.Objects.
//
//nolint:ireturn // the SDK iterator is returned behind the seam interface
func (s *Store) Objects(ctx context.Context, bucket string, q *storage.Query) ObjectIterator {
	return s.client.Bucket(bucket).Objects(ctx, q)
}

// NewRangeReader implements StoreAPI.NewRangeReader.
func (s *Store) NewRangeReader(
	ctx context.Context,
	bucket, key string,
	offset, length int64,
) (io.ReadCloser, error) {
	//nolint:wrapcheck // callers wrap with operation context
	return s.client.Bucket(bucket).Object(key).NewRangeReader(ctx, offset, length)
}

// Close implements StoreAPI.Close.
func (s *Store) Close() error {
	//nolint:wrapcheck // callers wrap with operation context
	return s.client.Close()
}

// Verify that the adapter implements our interface
var _ StoreAPI = (*Store)(nil)

// Verify that the SDK iterator satisfies ObjectIterator
var _ ObjectIterator = (*storage.ObjectIterator)(nil)
