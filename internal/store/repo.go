package store

import (
	"context"
	"errors"
)

// ErrBlockNotFound is returned by Load when no block with the name exists.
var ErrBlockNotFound = errors.New("block not found")

// BlockStore persists named, opaque blocks. Save replaces the whole block
// in one operation; readers never observe a partially written block.
type BlockStore interface {
	// Load returns the current contents of the named block.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the named block with data, creating it if needed.
	Save(ctx context.Context, name string, data []byte) error

	// Close releases any resources held by the store.
	Close() error
}
