package gcs

import (
	"context"
	"path/filepath"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/operations/download"
	"github.com/ajroetker/datafusion-gcs/objectstore"
)

// Download fetches the entire object identified by file and returns its body.
// This is a convenience for small objects that fit in memory; ranged access
// goes through FileReader.
func (c *Client) Download(ctx context.Context, file objectstore.SizedFile) ([]byte, error) {
	bucket, key := splitPath(file.Path)
	return download.New(c.api).Get(ctx, bucket, key)
}

// DownloadFile fetches the whole object identified by file and writes it to
// path on the client's filesystem, creating parent directories as needed.
func (c *Client) DownloadFile(ctx context.Context, file objectstore.SizedFile, path string) error {
	bucket, key := splitPath(file.Path)

	data, err := download.New(c.api).Get(ctx, bucket, key)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return gcserrors.NewObjectError("downloadFile", bucket, key, err).
				WithMessage("creating target directory")
		}
	}

	if err := c.fs.WriteFile(path, data, 0o644); err != nil {
		return gcserrors.NewObjectError("downloadFile", bucket, key, err).
			WithMessage("writing target file")
	}

	c.logger.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Str("path", path).
		Int("bytes", len(data)).
		Msg("downloaded object to file")

	return nil
}
