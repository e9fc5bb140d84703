package repository

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/cache"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

type cachedCatalog struct {
	next  CatalogProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedCatalog puts a read-through cache in front of next. A ttl of zero uses
// the cache's default. Cache failures are logged and the call goes to next.
func NewCachedCatalog(next CatalogProvider, c cache.Cache, ttl time.Duration) CatalogProvider {
	return &cachedCatalog{next: next, cache: c, ttl: ttl}
}

func (r *cachedCatalog) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	key := cache.Key(cache.CatalogKeyPrefix, cache.CatalogAllKey)

	var items []models.CatalogItem

	found, err := r.cache.Get(ctx, key, &items)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return items, nil
	}

	items, err = r.next.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, items, r.ttl); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return items, nil
}

func (r *cachedCatalog) GetItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	key := cache.Key(cache.CatalogKeyPrefix, strconv.FormatInt(id, 10))

	var item models.CatalogItem

	found, err := r.cache.Get(ctx, key, &item)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return &item, nil
	}

	got, err := r.next.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, got, r.ttl); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return got, nil
}
