// Package gcs provides the engine-facing object store surface.
package gcs

import (
	"context"
	"fmt"
	"strings"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/operations/list"
	"github.com/ajroetker/datafusion-gcs/internal/validation"
	"github.com/ajroetker/datafusion-gcs/objectstore"
)

// ListFile translates uri into a bucket and key prefix and streams the
// metadata of every object under it.
//
// The URI has the form "<scheme>://<bucket>[/<prefix>]". The remainder after
// the scheme splits on the first '/'; with no '/' the whole remainder is the
// bucket and the prefix is empty. Each streamed record's path has the form
// "{bucket}/{name}".
//
// The returned stream is lazy, finite, and one-shot. A failed listing page
// surfaces as the stream's final item; no partial continuation follows it.
func (c *Client) ListFile(ctx context.Context, uri string) (objectstore.FileMetaStream, error) {
	bucket, prefix, err := c.splitURI(uri)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateBucketName(bucket); err != nil {
		return nil, gcserrors.NewBucketError("list", bucket, gcserrors.Remote(err))
	}

	c.logger.Debug().
		Str("bucket", bucket).
		Str("prefix", prefix).
		Msg("listing objects")

	return list.New(c.api).Stream(ctx, bucket, prefix), nil
}

// ListDir would group the objects under prefix by delimiter into
// pseudo-directories. Object stores have no directories to walk and the
// engine's listing tables never ask for this against them, so it reports
// ErrNotImplemented.
func (c *Client) ListDir(_ context.Context, _, _ string) (objectstore.DirEntryStream, error) {
	return nil, gcserrors.NewError("listDir", gcserrors.ErrNotImplemented)
}

// FileReader returns a reader for one listed file. The reader reuses the
// size captured in file rather than re-querying the backend.
func (c *Client) FileReader(file objectstore.SizedFile) (objectstore.ObjectReader, error) {
	return &Reader{
		file:   file,
		bridge: c.bridge,
	}, nil
}

// Verify that the client satisfies the engine contract
var _ objectstore.ObjectStore = (*Client)(nil)

// splitURI strips the required scheme prefix and splits the remainder on the
// first '/' into bucket and prefix.
func (c *Client) splitURI(uri string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(uri, c.scheme+"://")
	if !ok {
		return "", "", gcserrors.NewError("list", gcserrors.Remote(gcserrors.ErrInvalidURI)).
			WithMessage(fmt.Sprintf("no %s scheme found in %q", c.scheme, uri))
	}

	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", gcserrors.NewError("list", gcserrors.Remote(gcserrors.ErrInvalidURI)).
			WithMessage(fmt.Sprintf("no bucket found in %q", uri))
	}

	return bucket, prefix, nil
}

// splitPath splits a listed-file path of the form "bucket/key" on the first
// '/'. With no '/' the whole path is the bucket and the key is empty,
// mirroring splitURI.
func splitPath(path string) (bucket, key string) {
	bucket, key, _ = strings.Cut(path, "/")
	return bucket, key
}
