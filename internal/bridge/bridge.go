// Package bridge converts asynchronous store downloads into plain blocking
// calls. Each call runs on a dedicated worker with its own freshly dialed
// session; the calling goroutine blocks on a one-shot channel until the
// worker delivers a result or a timeout bound elapses.
package bridge

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/gcsapi"
	"github.com/ajroetker/datafusion-gcs/internal/operations/download"
)

// DefaultTimeout is the bound a caller waits for a worker before giving up.
const DefaultTimeout = 10 * time.Second

// DialFunc establishes a fresh store session for one worker. Sessions are
// never shared between workers: a session is tied to the caller context that
// created it, and reusing one across concurrent blocking reads has caused
// deadlocks.
type DialFunc func(ctx context.Context) (gcsapi.StoreAPI, error)

// Bridge dispatches blocking reads to single-use workers.
type Bridge struct {
	dial    DialFunc
	timeout time.Duration
	sem     *semaphore.Weighted
	logger  zerolog.Logger
}

// New creates a Bridge. A non-positive timeout falls back to DefaultTimeout.
// maxInFlight bounds the number of concurrently running workers; zero or less
// leaves worker creation unbounded.
func New(dial DialFunc, timeout time.Duration, maxInFlight int64, logger zerolog.Logger) *Bridge {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var sem *semaphore.Weighted
	if maxInFlight > 0 {
		sem = semaphore.NewWeighted(maxInFlight)
	}

	return &Bridge{
		dial:    dial,
		timeout: timeout,
		sem:     sem,
		logger:  logger,
	}
}

// Timeout returns the wait bound applied to each call.
func (b *Bridge) Timeout() time.Duration {
	return b.timeout
}

type result struct {
	data []byte
	err  error
}

// Fetch blocks until the requested range of bucket/key has been downloaded,
// or until the wait bound elapses. A length of zero or less fetches the whole
// object.
//
// On timeout the worker is not cancelled; it finishes on its own and releases
// its session and semaphore slot. The result channel is buffered so the late
// send never blocks the worker.
func (b *Bridge) Fetch(bucket, key string, offset uint64, length int) ([]byte, error) {
	if b.sem != nil {
		acquireCtx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()
		if err := b.sem.Acquire(acquireCtx, 1); err != nil {
			return nil, errors.NewObjectError("syncRead", bucket, key, errors.ErrTimeout).
				WithMessage("waiting for a worker slot")
		}
	}

	b.logger.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Uint64("offset", offset).
		Int("length", length).
		Msg("dispatching sync read")

	ch := make(chan result, 1)
	go b.run(bucket, key, offset, length, ch)

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.data, res.err
	case <-timer.C:
		b.logger.Debug().
			Str("bucket", bucket).
			Str("key", key).
			Dur("timeout", b.timeout).
			Msg("sync read timed out, abandoning worker")
		return nil, errors.NewObjectError("syncRead", bucket, key, errors.ErrTimeout)
	}
}

// run performs one download on a freshly dialed session. The caller may have
// given up by the time it completes.
func (b *Bridge) run(bucket, key string, offset uint64, length int, ch chan<- result) {
	if b.sem != nil {
		defer b.sem.Release(1)
	}

	ctx := context.Background()

	api, err := b.dial(ctx)
	if err != nil {
		ch <- result{err: errors.NewObjectError("syncRead", bucket, key, errors.Remote(err))}
		return
	}
	defer api.Close()

	data, err := download.New(api).GetRange(ctx, bucket, key, offset, length)
	ch <- result{data: data, err: err}
}
