package download

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/testutil"
)

func body(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestDownloader_Get(t *testing.T) {
	data := body(4096)

	store := testutil.NewFakeStore()
	store.Put("data", "part-0.parquet", data, time.Time{})

	got, err := New(store).Get(context.Background(), "data", "part-0.parquet")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDownloader_GetRange(t *testing.T) {
	data := body(4096)

	store := testutil.NewFakeStore()
	store.Put("data", "part-0.parquet", data, time.Time{})

	d := New(store)

	tests := []struct {
		name   string
		offset uint64
		length int
		want   []byte
	}{
		{"first bytes", 0, 16, data[:16]},
		{"interior range", 100, 256, data[100:356]},
		{"tail", 4000, 96, data[4000:]},
		{"zero length means whole object", 0, 0, data},
		{"negative length means whole object", 0, -1, data},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.GetRange(context.Background(), "data", "part-0.parquet", tt.offset, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.length > 0 {
				assert.Len(t, got, tt.length)
			}
		})
	}
}

func TestDownloader_Get_NotFound(t *testing.T) {
	store := testutil.NewFakeStore()

	_, err := New(store).Get(context.Background(), "data", "missing.parquet")
	require.Error(t, err)
	assert.True(t, gcserrors.IsObjectNotFound(err))
	assert.True(t, gcserrors.IsRemote(err))
}

func TestDownloader_Get_BackendFailure(t *testing.T) {
	backendErr := errors.New("rpc error: permission denied")

	store := testutil.NewFakeStore()
	store.Put("data", "part-0.parquet", body(10), time.Time{})
	store.OpenErr = backendErr

	_, err := New(store).Get(context.Background(), "data", "part-0.parquet")
	require.Error(t, err)
	assert.True(t, gcserrors.IsRemote(err))
	assert.True(t, errors.Is(err, backendErr))
	assert.False(t, gcserrors.IsTimeout(err))
}
