// Package gcs provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package gcs

import (
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// WithScheme sets the URI scheme ListFile requires on logical paths.
// Default is "gcs", matching URIs of the form "gcs://bucket/prefix".
func WithScheme(scheme string) Option {
	return func(c *ClientConfig) {
		if scheme != "" {
			c.Scheme = scheme
		}
	}
}

// WithCredentialsFile points the client at a service account key file.
// If neither this nor WithCredentialsJSON is given, Application Default
// Credentials are used.
func WithCredentialsFile(path string) Option {
	return func(c *ClientConfig) {
		c.CredentialsFile = path
	}
}

// WithCredentialsJSON supplies a service account key directly.
// WithCredentialsFile takes precedence when both are set.
func WithCredentialsJSON(json []byte) Option {
	return func(c *ClientConfig) {
		c.CredentialsJSON = json
	}
}

// WithEndpoint sets a custom storage API endpoint.
// This is useful for emulators or storage-compatible services.
func WithEndpoint(endpoint string) Option {
	return func(c *ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithReadTimeout bounds how long a blocking read waits for its worker before
// failing with a timeout error. Default is 10 seconds. Non-positive values
// fall back to the default.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *ClientConfig) {
		c.ReadTimeout = timeout
	}
}

// WithMaxSyncReads bounds the number of concurrently running blocking reads.
// Each in-flight read holds one worker and one network session. Default is 64.
// A value of zero or less removes the bound.
func WithMaxSyncReads(n int64) Option {
	return func(c *ClientConfig) {
		c.MaxSyncReads = n
	}
}

// WithLogger attaches a zerolog logger for debug events on listing and
// blocking-read dispatch. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = &logger
	}
}

// WithFilesystem sets a custom filesystem implementation for DownloadFile.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) Option {
	return func(c *ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithClientOptions passes raw SDK client options through to session
// construction. Use this when you need fine-grained control over the
// underlying storage client, such as a custom token source or HTTP client.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *ClientConfig) {
		c.ClientOptions = append(c.ClientOptions, opts...)
	}
}
