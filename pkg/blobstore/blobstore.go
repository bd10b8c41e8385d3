package blobstore

import "context"

// Object identifies stored binary content: an opaque handle usable
// with Remove and a public URL for rendering.
type Object struct {
	Handle string
	URL    string
}

// Store is the external image-hosting adapter. Put fails with
// utils.ErrUploadFailed on transport errors and is never retried.
// Remove is idempotent: removing a handle the provider no longer
// knows about is treated as success.
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (Object, error)
	Remove(ctx context.Context, handle string) error
}
