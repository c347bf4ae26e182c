// Package errors provides error types and handling for GCS object-store operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents an object-store operation error with context about the
// operation that failed. It wraps the underlying SDK error with additional
// context for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "list", "download", "syncRead")
	Op string

	// Bucket is the bucket name (if applicable)
	Bucket string

	// Key is the object key (if applicable)
	Key string

	// Err is the underlying error from the storage SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("gcs.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("gcs.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("gcs.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("gcs.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the error was caused by the sync-read wait bound
// elapsing. This mirrors the net.Error convention so callers can tag the
// failure as a timeout rather than a generic I/O error.
func (e *Error) Timeout() bool {
	return errors.Is(e.Err, ErrTimeout)
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewBucketError creates a new Error with bucket context.
func NewBucketError(op, bucket string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Err:    err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// Remote wraps a failure surfaced by the storage backend so that it matches
// ErrRemoteStore while keeping the original error in the chain.
func Remote(err error) error {
	return fmt.Errorf("%w: %w", ErrRemoteStore, err)
}

// Sentinel errors for common object-store operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrRemoteStore indicates a failure surfaced by the storage backend:
	// authentication, not-found, network, or a malformed response page
	ErrRemoteStore = errors.New("gcs: remote store error")

	// ErrNotImplemented indicates a capability that is intentionally absent
	ErrNotImplemented = errors.New("gcs: not implemented")

	// ErrTimeout indicates that a sync read exceeded its wait bound
	ErrTimeout = errors.New("gcs: operation timeout")

	// ErrObjectNotFound indicates that the requested object does not exist
	ErrObjectNotFound = errors.New("gcs: object not found")

	// ErrInvalidURI indicates that a listing URI is missing the scheme prefix
	// or names no bucket
	ErrInvalidURI = errors.New("gcs: invalid uri")

	// ErrInvalidRange indicates that the requested byte range is invalid
	ErrInvalidRange = errors.New("gcs: invalid range")

	// ErrInvalidCredentials indicates that credential resolution failed
	ErrInvalidCredentials = errors.New("gcs: invalid credentials")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("gcs: invalid input")
)

// IsRemote checks if an error was surfaced by the storage backend.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsRemote(err error) bool {
	return errors.Is(err, ErrRemoteStore)
}

// IsNotImplemented checks if an error indicates an intentionally absent capability.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsTimeout checks if an error indicates that the sync-read wait bound elapsed.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsObjectNotFound checks if an error indicates that an object was not found.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsInvalidURI checks if an error indicates a malformed listing URI.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidURI(err error) bool {
	return errors.Is(err, ErrInvalidURI)
}
