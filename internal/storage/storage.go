// Package storage persists uploaded audio under generated keys. The Gateway
// validates and names uploads; BlobStore backends hold the bytes.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrUnsupportedType is returned for uploads whose extension is not
	// one of the accepted audio formats.
	ErrUnsupportedType = errors.New("unsupported audio type")
	// ErrBlobNotFound is returned when no blob exists under a key.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrInvalidKey is returned for keys that could escape the store.
	ErrInvalidKey = errors.New("invalid storage key")
)

// BlobStore is a flat key/value store for whole files.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
