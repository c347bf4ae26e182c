// Package download handles object download operations.
// This includes full-object fetches and byte-range requests.
package download

import (
	"context"
	stderrors "errors"
	"io"

	"cloud.google.com/go/storage"

	"github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/gcsapi"
)

// Downloader handles full and ranged object fetches.
type Downloader struct {
	api gcsapi.StoreAPI
}

// New creates a new Downloader instance.
func New(api gcsapi.StoreAPI) *Downloader {
	return &Downloader{
		api: api,
	}
}

// Get fetches the entire object body and returns it as a byte slice.
func (d *Downloader) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	return d.fetch(ctx, bucket, key, 0, -1)
}

// GetRange fetches length bytes starting at offset. A length of zero or less
// requests the whole object; callers overload zero length to mean "full
// download", never "read zero bytes".
func (d *Downloader) GetRange(
	ctx context.Context,
	bucket, key string,
	offset uint64,
	length int,
) ([]byte, error) {
	if length <= 0 {
		return d.Get(ctx, bucket, key)
	}
	return d.fetch(ctx, bucket, key, int64(offset), int64(length))
}

// fetch opens a range reader and drains it. A negative length reads to the
// end of the object.
func (d *Downloader) fetch(ctx context.Context, bucket, key string, offset, length int64) ([]byte, error) {
	reader, err := d.api.NewRangeReader(ctx, bucket, key, offset, length)
	if err != nil {
		if stderrors.Is(err, storage.ErrObjectNotExist) {
			return nil, errors.NewObjectError("download", bucket, key, errors.Remote(errors.ErrObjectNotFound))
		}
		return nil, errors.NewObjectError("download", bucket, key, errors.Remote(err))
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewObjectError("download", bucket, key, errors.Remote(err))
	}

	return data, nil
}
