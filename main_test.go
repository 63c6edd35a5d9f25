package main

import (
	"context"
	"path/filepath"
	"testing"

	"podhub/internal/config"
	"podhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenBlobStoreLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	cfg := &config.Config{StorageBackend: "local", UploadDir: dir}

	blobs, err := openBlobStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStore{}, blobs)
	assert.DirExists(t, dir)
}

func TestOpenBlobStoreS3RequiresBucket(t *testing.T) {
	cfg := &config.Config{StorageBackend: "s3", S3: storage.S3Config{Region: "us-east-1"}}

	_, err := openBlobStore(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
