package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.Cache = (*Cache)(nil)

// Cache is a mock implementation of docscrape.Cache.
type Cache struct {
	ClearFn func(ctx context.Context) error
	LenFn   func(ctx context.Context) (int, error)
}

func (c *Cache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}

func (c *Cache) Len(ctx context.Context) (int, error) {
	return c.LenFn(ctx)
}
