package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of docscrape.ArchiveStore.
type ArchiveStore struct {
	SaveFn func(ctx context.Context, name string, r io.Reader) (string, error)
}

func (s *ArchiveStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	return s.SaveFn(ctx, name, r)
}
