package gcs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcserrors "github.com/ajroetker/datafusion-gcs/errors"
	"github.com/ajroetker/datafusion-gcs/internal/testutil"
)

func TestClient_SplitURI(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore())

	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{"bucket and prefix", "gcs://data/warehouse/year=2026/", "data", "warehouse/year=2026/", false},
		{"bucket and single key", "gcs://data/file.parquet", "data", "file.parquet", false},
		{"bucket only", "gcs://data", "data", "", false},
		{"bucket with trailing slash", "gcs://data/", "data", "", false},
		{"missing scheme", "s3://data/warehouse/", "", "", true},
		{"bare path", "data/warehouse/", "", "", true},
		{"scheme only", "gcs://", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, err := client.splitURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, gcserrors.IsRemote(err))
				assert.True(t, gcserrors.IsInvalidURI(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestClient_SplitURI_CustomScheme(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore(), WithScheme("gs"))

	bucket, prefix, err := client.splitURI("gs://data/warehouse/")
	require.NoError(t, err)
	assert.Equal(t, "data", bucket)
	assert.Equal(t, "warehouse/", prefix)

	_, _, err = client.splitURI("gcs://data/warehouse/")
	require.Error(t, err)
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path       string
		wantBucket string
		wantKey    string
	}{
		{"data/warehouse/part-0.parquet", "data", "warehouse/part-0.parquet"},
		{"data/file", "data", "file"},
		{"data", "data", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		bucket, key := splitPath(tt.path)
		assert.Equal(t, tt.wantBucket, bucket, "path %q", tt.path)
		assert.Equal(t, tt.wantKey, key, "path %q", tt.path)
	}
}

func TestClient_ListFile(t *testing.T) {
	updated := time.Date(2026, 7, 2, 15, 4, 5, 0, time.UTC)

	store := testutil.NewFakeStore()
	store.Put("data", "warehouse/part-0.parquet", make([]byte, 100), updated)
	store.Put("data", "warehouse/part-1.parquet", make([]byte, 200), updated)
	store.Put("data", "other/skip.csv", []byte("no"), updated)

	client := NewWithAPI(store)

	stream, err := client.ListFile(context.Background(), "gcs://data/warehouse/")
	require.NoError(t, err)

	metas, err := stream.Collect()
	require.NoError(t, err)
	require.Len(t, metas, 2)

	assert.Equal(t, "data/warehouse/part-0.parquet", metas[0].SizedFile.Path)
	assert.Equal(t, uint64(100), metas[0].SizedFile.Size)
	assert.Equal(t, updated, metas[0].LastModified)
	assert.Equal(t, "data/warehouse/part-1.parquet", metas[1].SizedFile.Path)
}

func TestClient_ListFile_InvalidURI(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore())

	_, err := client.ListFile(context.Background(), "file:///tmp/data")
	require.Error(t, err)
	assert.True(t, gcserrors.IsRemote(err))
}

func TestClient_ListFile_InvalidBucketName(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore())

	_, err := client.ListFile(context.Background(), "gcs://BAD_Bucket/prefix")
	require.Error(t, err)
	assert.True(t, gcserrors.IsRemote(err))
}

func TestClient_ListDir_NotImplemented(t *testing.T) {
	client := NewWithAPI(testutil.NewFakeStore())

	_, err := client.ListDir(context.Background(), "gcs://data/", "/")
	require.Error(t, err)
	assert.True(t, gcserrors.IsNotImplemented(err))
	assert.False(t, gcserrors.IsRemote(err))
	assert.False(t, gcserrors.IsTimeout(err))
}
