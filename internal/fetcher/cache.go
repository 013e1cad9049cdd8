package fetcher

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"credcheck/internal/domain"
	"credcheck/internal/storage"
)

// CachingFetcher decorates a Fetcher with the Redis document cache. Cache
// trouble is logged and swallowed: a broken cache degrades to refetching,
// never to a failed analysis.
type CachingFetcher struct {
	inner  *Fetcher
	store  *storage.RedisStore
	logger *zap.Logger
}

func NewCachingFetcher(inner *Fetcher, store *storage.RedisStore, logger *zap.Logger) *CachingFetcher {
	return &CachingFetcher{inner: inner, store: store, logger: logger}
}

func (c *CachingFetcher) Fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	doc, err := c.store.GetDocument(ctx, rawURL)
	if err == nil {
		c.logger.Debug("document cache hit", zap.String("url", rawURL))
		return doc, nil
	}
	if !errors.Is(err, storage.ErrCacheMiss) {
		c.logger.Warn("document cache read failed", zap.String("url", rawURL), zap.Error(err))
	}

	doc, err = c.inner.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := c.store.SetDocument(ctx, doc); err != nil {
		c.logger.Warn("document cache write failed", zap.String("url", rawURL), zap.Error(err))
	}
	return doc, nil
}
