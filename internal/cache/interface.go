package cache

import (
	"context"
	"strings"
	"time"
)

// Cache does not own its backing client; whoever created the client closes it.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Key joins the parts with ":", e.g. Key("catalog", "42") == "catalog:42".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

const (
	CatalogKeyPrefix = "catalog"
	CatalogAllKey    = "all"
)
