package adapter

import "context"

// Storage is the contract for a blob or key-value store.
type Storage interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores data under key, replacing any existing value.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting an absent key is not an error unless
	// the adapter documents otherwise.
	Delete(ctx context.Context, key string) error

	// GenerateUploadURL returns a URL a client can upload a blob to
	// directly.
	GenerateUploadURL(ctx context.Context) (string, error)
}
