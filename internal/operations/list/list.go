// Package list handles object listing operations.
// It flattens the backend's paged listing responses into one logical,
// fail-fast stream of file metadata.
package list

import (
	"context"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/gcsapi"
	"github.com/ajroetker/datafusion-gcs/objectstore"
)

// streamBuffer is the channel capacity of a listing stream. Buffered so the
// producer can run ahead of a slow consumer without blocking on every record.
const streamBuffer = 100

// Lister handles streaming of object listings.
type Lister struct {
	api gcsapi.StoreAPI
}

// New creates a new Lister.
func New(api gcsapi.StoreAPI) *Lister {
	return &Lister{
		api: api,
	}
}

// Stream lists every object of bucket whose name starts with prefix and
// streams its metadata. Each record's path is "{bucket}/{name}" so callers
// can split it back into bucket and key on the first '/'.
//
// The stream is one-shot and fail-fast: a failed response page surfaces as
// the final item and ends the stream. Callers that did not ask for partial
// results never silently receive them.
func (l *Lister) Stream(ctx context.Context, bucket, prefix string) objectstore.FileMetaStream {
	out := make(chan objectstore.FileMetaResult, streamBuffer)

	go func() {
		defer close(out)

		it := l.api.Objects(ctx, bucket, &storage.Query{Prefix: prefix})

		for {
			attrs, err := it.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				select {
				case out <- objectstore.FileMetaResult{
					Err: errors.NewBucketError("list", bucket, errors.Remote(err)),
				}:
				case <-ctx.Done():
				}
				return
			}

			meta := objectstore.FileMeta{
				SizedFile: objectstore.SizedFile{
					Path: bucket + "/" + attrs.Name,
					Size: uint64(attrs.Size),
				},
				LastModified: attrs.Updated,
			}

			select {
			case out <- objectstore.FileMetaResult{Meta: meta}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
