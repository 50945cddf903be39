// Package store persists run artifacts (game record, transcript, replay,
// stats, artwork) behind a small blob interface with local-filesystem and S3
// backends.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Download when no object exists under the key.
// Both backends normalize their native missing-object errors to this.
var ErrNotFound = errors.New("object not found")

// Blob is the storage surface the rest of the program writes through. Keys
// may contain slashes; backends treat them as paths.
type Blob interface {
	Upload(ctx context.Context, key string, content []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// contentTypeFor maps a key's extension to the MIME type stored alongside the
// object. Only the extensions this program actually writes are listed.
func contentTypeFor(key string) string {
	switch {
	case strings.HasSuffix(key, ".html"):
		return "text/html"
	case strings.HasSuffix(key, ".json"):
		return "application/json"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(key, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
