package storage

import (
	"context"
	"io"
)

// ObjectStorage is the target for export snapshots. Snapshots are
// write-mostly: the tracker uploads CSV dumps and hands back a URL, it never
// reads them again itself.
type ObjectStorage interface {
	// Upload stores an object under key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// GetURL returns the URL for accessing an uploaded object.
	GetURL(key string) string

	// EnsureBucket makes sure the target bucket exists.
	EnsureBucket(ctx context.Context) error
}
