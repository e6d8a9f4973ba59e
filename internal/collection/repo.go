package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
	"github.com/MuhamadTAH/psychology-sub002/internal/store"
)

// Repo binds the collection to one named block of a store.
type Repo struct {
	store store.BlockStore
	block string
}

func NewRepo(s store.BlockStore, block string) *Repo {
	return &Repo{store: s, block: block}
}

// Block returns the name of the block the repo reads and writes.
func (r *Repo) Block() string {
	return r.block
}

// Load reads the whole collection. A block that does not exist yet is an
// empty collection.
func (r *Repo) Load(ctx context.Context) (*Collection, error) {
	data, err := r.store.Load(ctx, r.block)
	if errors.Is(err, store.ErrBlockNotFound) {
		return &Collection{Lessons: []lessons.Lesson{}}, nil
	}
	if err != nil {
		return nil, &PersistenceReadError{Block: r.block, Err: err}
	}
	return Parse(r.block, data)
}

// Save renders c in full and replaces the stored block with it. It returns
// the number of bytes written.
func (r *Repo) Save(ctx context.Context, c *Collection) (int, error) {
	data, err := Render(c)
	if err != nil {
		return 0, err
	}
	if err := r.store.Save(ctx, r.block, data); err != nil {
		return 0, fmt.Errorf("save collection: %w", err)
	}
	return len(data), nil
}
