package gcs

import (
	"context"
	"testing"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/testutil"
	"github.com/ajroetker/datafusion-gcs/objectstore"
)

func TestClient_Download(t *testing.T) {
	data := testBody(2048)

	store := testutil.NewFakeStore()
	store.Put("data", "warehouse/part-0.parquet", data, time.Time{})

	client := NewWithAPI(store)

	got, err := client.Download(context.Background(), objectstore.SizedFile{
		Path: "data/warehouse/part-0.parquet",
		Size: 2048,
	})
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestClient_Download_NotFound(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore())

	_, err := client.Download(context.Background(), objectstore.SizedFile{Path: "data/missing"})
	require.Error(t, err)
	assert.True(t, gcserrors.IsObjectNotFound(err))
}

func TestClient_DownloadFile(t *testing.T) {
	data := testBody(2048)

	store := testutil.NewFakeStore()
	store.Put("data", "warehouse/part-0.parquet", data, time.Time{})

	memFS := billy.NewInMemoryFS()
	client := NewWithAPI(store, WithFilesystem(memFS))

	err := client.DownloadFile(context.Background(), objectstore.SizedFile{
		Path: "data/warehouse/part-0.parquet",
		Size: 2048,
	}, "local/cache/part-0.parquet")
	require.NoError(t, err)

	written, err := memFS.ReadFile("local/cache/part-0.parquet")
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestClient_DownloadFile_RemoteFailure(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	client := NewWithAPI(testutil.NewFakeStore(), WithFilesystem(memFS))

	err := client.DownloadFile(context.Background(), objectstore.SizedFile{
		Path: "data/missing.parquet",
	}, "local/missing.parquet")
	require.Error(t, err)
	assert.True(t, gcserrors.IsRemote(err))

	// Nothing is written on failure.
	exists, err := memFS.Exists("local/missing.parquet")
	require.NoError(t, err)
	assert.False(t, exists)
}
