// Package gcs provides client initialization and configuration.
//
// The Client owns one authenticated Cloud Storage session used for listings
// and direct downloads. Blocking reads never touch that session: each one is
// dispatched to a worker that dials its own.
package gcs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/bridge"
	"github.com/ajroetker/datafusion-gcs/internal/gcsapi"
)

const (
	// DefaultScheme is the URI scheme accepted by ListFile.
	DefaultScheme = "gcs"

	// DefaultMaxSyncReads bounds the number of concurrently running blocking
	// reads. Each blocking read holds a worker and a network session, so an
	// unbounded caller would create proportionally many of both.
	DefaultMaxSyncReads = 64
)

// ClientConfig holds the configuration assembled by functional options.
type ClientConfig struct {
	// Scheme is the URI scheme required by ListFile
	Scheme string

	// CredentialsFile is a path to a service account key file
	CredentialsFile string

	// CredentialsJSON is the contents of a service account key
	CredentialsJSON []byte

	// Endpoint overrides the storage API endpoint (emulators)
	Endpoint string

	// ReadTimeout bounds how long a blocking read waits for its worker
	ReadTimeout time.Duration

	// MaxSyncReads bounds concurrently running blocking reads; <= 0 is unbounded
	MaxSyncReads int64

	// Logger receives debug events; nil means no logging
	Logger *zerolog.Logger

	// Filesystem backs DownloadFile; nil means the OS filesystem
	Filesystem fs.Filesystem

	// ClientOptions are passed through to the storage SDK untouched
	ClientOptions []option.ClientOption
}

// Option is a functional option for configuring the client.
type Option func(*ClientConfig)

// Client represents a GCS-backed object store with configurable options.
// It is immutable after construction and safe for concurrent use; no field
// is mutated once New returns.
type Client struct {
	// api is the session used for listings and direct downloads
	api gcsapi.StoreAPI

	// scheme is the URI scheme ListFile requires
	scheme string

	// bridge dispatches blocking reads to single-use workers
	bridge *bridge.Bridge

	// fs is the filesystem abstraction backing DownloadFile
	fs fs.Filesystem

	// logger receives debug events
	logger zerolog.Logger
}

// New creates a new client with the provided options.
// Credentials come from Application Default Credentials unless an option
// injects a service account key explicitly.
//
// Example:
//
//	client, err := gcs.New(ctx,
//	    gcs.WithReadTimeout(30*time.Second),
//	    gcs.WithMaxSyncReads(16),
//	)
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	clientOpts := storageOptions(cfg)

	sc, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		// Session construction fails before any request is made, almost
		// always because credential resolution failed.
		return nil, gcserrors.NewError("connect",
			gcserrors.Remote(fmt.Errorf("%w: %w", gcserrors.ErrInvalidCredentials, err)))
	}

	// Workers dial their own sessions with the same options. The session
	// created above stays with the listing and direct-download paths.
	dial := func(ctx context.Context) (gcsapi.StoreAPI, error) {
		c, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, err
		}
		return gcsapi.NewStore(c), nil
	}

	return newClient(gcsapi.NewStore(sc), dial, cfg), nil
}

// NewWithAPI creates a client around a custom StoreAPI implementation.
// Blocking-read workers receive the same API with session teardown disabled,
// so one fake can serve every path. This is primarily used for testing.
func NewWithAPI(api gcsapi.StoreAPI, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dial := func(context.Context) (gcsapi.StoreAPI, error) {
		return sharedAPI{api}, nil
	}

	return newClient(api, dial, cfg)
}

func newClient(api gcsapi.StoreAPI, dial bridge.DialFunc, cfg *ClientConfig) *Client {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	filesystem := cfg.Filesystem
	if filesystem == nil {
		filesystem = billy.NewOSFS("/")
	}

	return &Client{
		api:    api,
		scheme: cfg.Scheme,
		bridge: bridge.New(dial, cfg.ReadTimeout, cfg.MaxSyncReads, logger),
		fs:     filesystem,
		logger: logger,
	}
}

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Scheme:       DefaultScheme,
		ReadTimeout:  bridge.DefaultTimeout,
		MaxSyncReads: DefaultMaxSyncReads,
	}
}

// storageOptions translates the assembled config into SDK client options.
func storageOptions(cfg *ClientConfig) []option.ClientOption {
	var opts []option.ClientOption

	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	} else if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	opts = append(opts, cfg.ClientOptions...)

	return opts
}

// Close releases the session held by the client. Sessions dialed by in-flight
// blocking reads are owned by their workers and close on their own.
func (c *Client) Close() error {
	if err := c.api.Close(); err != nil {
		return gcserrors.NewError("close", err)
	}
	return nil
}

// sharedAPI disables Close so a session injected through NewWithAPI survives
// worker teardown.
type sharedAPI struct {
	gcsapi.StoreAPI
}

func (sharedAPI) Close() error { return nil }
