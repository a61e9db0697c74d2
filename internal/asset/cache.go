// Package asset keeps the artwork of the current track in a single slot.
package asset

import (
	"context"
	"fmt"

	"github.com/tessro/coverclock/internal/core"
	cerrors "github.com/tessro/coverclock/internal/errors"
	"go.uber.org/zap"
)

// Cache is a single-slot artwork cache. A download is issued only when the
// requested URL differs from the one the slot was last filled for.
type Cache struct {
	logger  *zap.Logger
	fetcher core.AssetFetcher
	asset   core.TrackAsset
}

// NewCache creates a cache that stores artwork through fetcher.
func NewCache(logger *zap.Logger, fetcher core.AssetFetcher) *Cache {
	return &Cache{
		logger:  logger,
		fetcher: fetcher,
		asset:   core.TrackAsset{LocalPath: fetcher.Path()},
	}
}

// EnsureAsset makes sure the slot holds the artwork for url and returns the
// slot path. fetched reports whether a download was issued. A failed
// download leaves the slot bookkeeping untouched so the same URL is tried
// again next time; whatever the file held before stays in place.
func (c *Cache) EnsureAsset(ctx context.Context, url string) (path string, fetched bool, err error) {
	if url == "" {
		return c.asset.LocalPath, false, nil
	}
	c.asset.SourceURL = url
	if url == c.asset.FetchedForURL {
		return c.asset.LocalPath, false, nil
	}

	c.logger.Info("Downloading artwork", zap.String("url", url))
	if err := c.fetcher.Fetch(ctx, url); err != nil {
		c.logger.Warn("Artwork download failed, keeping previous file",
			zap.String("url", url), zap.Error(err))
		return c.asset.LocalPath, true, fmt.Errorf("%w: %w", cerrors.ErrFetch, err)
	}

	c.asset.FetchedForURL = url
	c.logger.Debug("Artwork stored", zap.String("path", c.asset.LocalPath))
	return c.asset.LocalPath, true, nil
}

// Invalidate forgets which URL the slot was filled for, forcing the next
// EnsureAsset to download again. The file itself is left alone.
func (c *Cache) Invalidate() {
	c.asset.SourceURL = ""
	c.asset.FetchedForURL = ""
}

// Asset returns a copy of the slot descriptor.
func (c *Cache) Asset() core.TrackAsset {
	return c.asset
}
