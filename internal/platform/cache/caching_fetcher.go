// Package cache はリモートドキュメント取得のRedisキャッシュを提供します。
package cache

import (
	"context"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentFetcher はURLからドキュメントを取得します。
type DocumentFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// CachingFetcher decorates a DocumentFetcher with Redis caching.
// Only successful responses are cached; errors always reach the caller.
type CachingFetcher struct {
	inner     DocumentFetcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

// NewCachingFetcher decorates a DocumentFetcher with Redis caching.
// If ttl is 0, entries live until the next B3 session opens. If namespace is empty, it uses "docs".
func NewCachingFetcher(rdb *redis.Client, ttl time.Duration, inner DocumentFetcher, namespace string) *CachingFetcher {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "docs"
	}
	return &CachingFetcher{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// Get returns the cached document for rawURL, or fetches and caches it.
func (c *CachingFetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Get(ctx, rawURL)
	}

	key := c.cacheKey(rawURL)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		return b, nil
	}

	// 2) Fallback to the source
	b, err := c.inner.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, b, c.expiration()).Err()

	return b, nil
}

func (c *CachingFetcher) expiration() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextSession(c.now())
}

// cacheKey は namespace とURLからキーを生成します。
// crumb のようなセッション固有のパラメータはキーに含めません。
func (c *CachingFetcher) cacheKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return c.namespace + ":" + rawURL
	}
	q := u.Query()
	q.Del("crumb")
	u.RawQuery = q.Encode()
	return c.namespace + ":" + u.String()
}
