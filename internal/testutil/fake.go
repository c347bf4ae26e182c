// Package testutil provides test utilities and fakes for store operations.
// This package is internal and should only be used for testing within this module.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/gcsapi"
)

// FakeObject is one object held by a FakeStore.
type FakeObject struct {
	Name    string
	Data    []byte
	Updated time.Time
}

// FakeStore is an in-memory implementation of the gcsapi.StoreAPI interface
// for testing. Error injection and read delays can be configured through the
// exported fields before the store is handed to the code under test.
type FakeStore struct {
	mu sync.Mutex

	// Buckets maps bucket name to the objects it holds, in listing order.
	Buckets map[string][]FakeObject

	// ListErr, when set, is yielded by object iterators after ListErrAfter
	// successful records, simulating a failed response page.
	ListErr      error
	ListErrAfter int

	// OpenErr, when set, fails every NewRangeReader call.
	OpenErr error

	// ReadDelay stalls the first Read of every range reader. Used to drive
	// the sync-read path into its timeout.
	ReadDelay time.Duration

	// CloseCount tracks how many times Close was called.
	CloseCount int
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		Buckets: make(map[string][]FakeObject),
	}
}

// Put adds an object to a bucket.
func (f *FakeStore) Put(bucket, name string, data []byte, updated time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Buckets[bucket] = append(f.Buckets[bucket], FakeObject{
		Name:    name,
		Data:    data,
		Updated: updated,
	})
}

// Objects implements gcsapi.StoreAPI.Objects.
//
//nolint:ireturn // interface return is the seam contract
func (f *FakeStore) Objects(_ context.Context, bucket string, q *storage.Query) gcsapi.ObjectIterator {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := ""
	if q != nil {
		prefix = q.Prefix
	}

	var matched []FakeObject
	for _, obj := range f.Buckets[bucket] {
		if prefix == "" || len(obj.Name) >= len(prefix) && obj.Name[:len(prefix)] == prefix {
			matched = append(matched, obj)
		}
	}

	return &fakeIterator{
		bucket:   bucket,
		objects:  matched,
		err:      f.ListErr,
		errAfter: f.ListErrAfter,
	}
}

// NewRangeReader implements gcsapi.StoreAPI.NewRangeReader.
func (f *FakeStore) NewRangeReader(
	_ context.Context,
	bucket, key string,
	offset, length int64,
) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.OpenErr != nil {
		return nil, f.OpenErr
	}

	var data []byte
	found := false
	for _, obj := range f.Buckets[bucket] {
		if obj.Name == key {
			data = obj.Data
			found = true
			break
		}
	}
	if !found {
		return nil, storage.ErrObjectNotExist
	}

	if offset < 0 || offset > int64(len(data)) {
		return nil, fmt.Errorf("%w: offset %d out of range for %d-byte object",
			errors.ErrInvalidRange, offset, len(data))
	}

	end := int64(len(data))
	if length >= 0 && offset+length < end {
		end = offset + length
	}

	return &delayedReader{
		Reader: bytes.NewReader(data[offset:end]),
		delay:  f.ReadDelay,
	}, nil
}

// Close implements gcsapi.StoreAPI.Close.
func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCount++
	return nil
}

// Verify that the fake implements the seam interface
var _ gcsapi.StoreAPI = (*FakeStore)(nil)

// fakeIterator walks a bucket snapshot, optionally yielding an injected error
// partway through to simulate a failed page.
type fakeIterator struct {
	bucket   string
	objects  []FakeObject
	pos      int
	err      error
	errAfter int
}

func (it *fakeIterator) Next() (*storage.ObjectAttrs, error) {
	if it.err != nil && it.pos >= it.errAfter {
		return nil, it.err
	}
	if it.pos >= len(it.objects) {
		return nil, iterator.Done
	}

	obj := it.objects[it.pos]
	it.pos++

	return &storage.ObjectAttrs{
		Bucket:  it.bucket,
		Name:    obj.Name,
		Size:    int64(len(obj.Data)),
		Updated: obj.Updated,
	}, nil
}

// delayedReader stalls the first Read by a configured delay.
type delayedReader struct {
	*bytes.Reader
	delay   time.Duration
	delayed bool
}

func (r *delayedReader) Read(p []byte) (int, error) {
	if r.delay > 0 && !r.delayed {
		r.delayed = true
		time.Sleep(r.delay)
	}
	return r.Reader.Read(p)
}

func (r *delayedReader) Close() error { return nil }
