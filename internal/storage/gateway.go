package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var audioContentTypes = map[string]string{
	"mp3": "audio/mpeg",
	"wav": "audio/wav",
	"ogg": "audio/ogg",
}

// Gateway accepts audio uploads and stores them under random keys.
type Gateway struct {
	blobs BlobStore
}

// NewGateway creates a Gateway writing to blobs.
func NewGateway(blobs BlobStore) *Gateway {
	return &Gateway{blobs: blobs}
}

// Store validates the extension of filename and writes data under a fresh
// key of the form "<uuid>.<ext>". Only the extension of filename is kept.
func (g *Gateway) Store(ctx context.Context, filename string, data []byte) (string, error) {
	ext, ok := audioExtension(filename)
	if !ok {
		return "", fmt.Errorf("file %q: %w", path.Base(filename), ErrUnsupportedType)
	}

	key := uuid.New().String() + "." + ext
	if err := g.blobs.Put(ctx, key, data, audioContentTypes[ext]); err != nil {
		return "", fmt.Errorf("failed to store audio: %w", err)
	}
	return key, nil
}

// Open returns the content of a stored reference along with its MIME type.
func (g *Gateway) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	if !ValidKey(ref) {
		return nil, "", ErrInvalidKey
	}
	ext, _ := audioExtension(ref)
	rc, err := g.blobs.Open(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	return rc, audioContentTypes[ext], nil
}

// Delete removes a stored reference.
func (g *Gateway) Delete(ctx context.Context, ref string) error {
	if !ValidKey(ref) {
		return ErrInvalidKey
	}
	return g.blobs.Delete(ctx, ref)
}

// ValidKey reports whether key has the shape produced by Store.
func ValidKey(key string) bool {
	base, ext, found := strings.Cut(key, ".")
	if !found {
		return false
	}
	if _, ok := audioContentTypes[ext]; !ok {
		return false
	}
	_, err := uuid.Parse(base)
	return err == nil && len(base) == 36
}

func audioExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := audioContentTypes[ext]
	return ext, ok
}
