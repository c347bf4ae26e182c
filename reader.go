package gcs

import (
	"bytes"
	"context"
	"io"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/bridge"
	"github.com/ajroetker/datafusion-gcs/objectstore"
)

// Reader reads byte ranges of one remote object. It carries no position
// cursor and no prefetch cache; every read is dispatched independently.
// Readers are cheap to create and are meant to be discarded after use.
type Reader struct {
	file   objectstore.SizedFile
	bridge *bridge.Bridge
}

// Length returns the object's total size as captured at listing time. It is
// not re-queried, so it can go stale if the object is rewritten remotely;
// that is an accepted limitation of the listing snapshot.
func (r *Reader) Length() uint64 {
	return r.file.Size
}

// ChunkReader is the asynchronous read path. The engine's execution operators
// cannot drive it yet, so it reports ErrNotImplemented rather than guessing
// at stream semantics.
func (r *Reader) ChunkReader(_ context.Context, _ uint64, _ int) (io.ReadCloser, error) {
	bucket, key := splitPath(r.file.Path)
	return nil, gcserrors.NewObjectError("chunkReader", bucket, key, gcserrors.ErrNotImplemented)
}

// SyncChunkReader blocks until length bytes starting at start have been
// fetched and returns a reader over them. A length of zero requests the whole
// object body, not an empty read.
//
// The calling goroutine suspends until a dedicated worker delivers the bytes
// or the client's read timeout elapses, in which case the error satisfies
// Timeout() == true.
func (r *Reader) SyncChunkReader(start uint64, length int) (io.Reader, error) {
	bucket, key := splitPath(r.file.Path)

	data, err := r.bridge.Fetch(bucket, key, start, length)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// Verify that the reader satisfies the engine contract
var _ objectstore.ObjectReader = (*Reader)(nil)
