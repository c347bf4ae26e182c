// Package objectstore defines the storage-access contract a query engine uses
// to discover files under a logical path and read byte ranges from them.
//
// Implementations adapt a concrete backend (an object-storage service, a local
// directory tree) to this contract. The contract is read-only: there are no
// write, delete, or rename operations.
package objectstore

import (
	"context"
	"io"
	"time"
)

// SizedFile identifies one remote object together with its size in bytes.
// Path has the form "bucket/key"; it splits back into bucket and key on the
// first '/'. A SizedFile is immutable once constructed.
type SizedFile struct {
	Path string
	Size uint64
}

// FileMeta is one listing record. LastModified is the zero time when the
// backend did not report a modification timestamp.
type FileMeta struct {
	SizedFile    SizedFile
	LastModified time.Time
}

// FileMetaResult carries either a listing record or the error that ended the
// listing. Exactly one of the two fields is meaningful.
type FileMetaResult struct {
	Meta FileMeta
	Err  error
}

// FileMetaStream is a lazy, finite, one-shot sequence of listing records.
// The channel is closed when the listing is exhausted. A failed listing page
// surfaces as a result with Err set; it is always the final item, and no
// further records follow it.
type FileMetaStream <-chan FileMetaResult

// Collect drains the stream into a slice. It returns the records received
// before the first error, together with that error.
func (s FileMetaStream) Collect() ([]FileMeta, error) {
	var metas []FileMeta
	for res := range s {
		if res.Err != nil {
			return metas, res.Err
		}
		metas = append(metas, res.Meta)
	}
	return metas, nil
}

// DirEntry is one entry of a directory-style listing: either a pseudo-directory
// prefix or a file.
type DirEntry struct {
	Prefix string
	Meta   *FileMeta
}

// DirEntryResult carries either a directory entry or a terminal error.
type DirEntryResult struct {
	Entry DirEntry
	Err   error
}

// DirEntryStream is a lazy, one-shot sequence of directory entries.
type DirEntryStream <-chan DirEntryResult

// ObjectStore is the capability set a query engine consumes to access files
// on a storage backend. Implementations must be safe for concurrent use.
type ObjectStore interface {
	// ListFile streams the metadata of every object under the given URI.
	ListFile(ctx context.Context, uri string) (FileMetaStream, error)

	// ListDir lists entries under prefix grouped by delimiter into
	// pseudo-directories.
	ListDir(ctx context.Context, prefix, delimiter string) (DirEntryStream, error)

	// FileReader returns a reader for one listed file.
	FileReader(file SizedFile) (ObjectReader, error)
}

// ObjectReader reads byte ranges of a single object. Readers are short-lived,
// carry no position cursor, and dispatch every read independently.
type ObjectReader interface {
	// Length returns the object's total size as captured at listing time.
	Length() uint64

	// ChunkReader returns an asynchronous reader over [start, start+length).
	ChunkReader(ctx context.Context, start uint64, length int) (io.ReadCloser, error)

	// SyncChunkReader blocks until the requested range has been fetched and
	// returns a reader over it. A length of zero requests the whole object.
	SyncChunkReader(start uint64, length int) (io.Reader, error)
}
