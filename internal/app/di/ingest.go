package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"stock_ingest/internal/feature/stocks/adapters/fundamentus"
	"stock_ingest/internal/feature/stocks/adapters/twelvedata"
	"stock_ingest/internal/feature/stocks/adapters/yahoo"
	"stock_ingest/internal/feature/stocks/usecase"
	"stock_ingest/internal/platform/cache"
	"stock_ingest/internal/platform/config"
	infrahttp "stock_ingest/internal/platform/http"
	infraredis "stock_ingest/internal/platform/redis"
	"stock_ingest/internal/shared/ratelimiter"
)

// NewRedis returns a connected client, or nil when Redis is disabled or unreachable.
func NewRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Addr(), cfg.Password, cfg.DB)
	if err != nil {
		slog.Warn("Redis unavailable. Running without document cache.")
		return nil
	}
	return rdb
}

// NewExtractors wires the four fragment extractors. All remote requests share one rate limiter.
// fundamentus pages go through the Redis document cache; Yahoo responses depend on a
// per-process crumb and are always fetched live.
func NewExtractors(cfg *config.Config, rdb *redis.Client) usecase.Extractors {
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Interval)

	pageFetcher := infrahttp.NewFetcher(infrahttp.NewHTTPClient(cfg.HTTPTimeout), cfg.UserAgent, limiter)
	cachedPages := cache.NewCachingFetcher(rdb, cfg.Redis.TTL, pageFetcher, "fundamentus")

	apiFetcher := infrahttp.NewFetcher(infrahttp.NewHTTPClientWithCookies(cfg.HTTPTimeout), cfg.UserAgent, limiter)
	yahooClient := yahoo.NewClient(cfg.Yahoo, apiFetcher)

	return usecase.Extractors{
		Details: fundamentus.NewDetailsExtractor(cfg.Fundamentus, cachedPages),
		Holders: fundamentus.NewHoldersExtractor(cfg.Fundamentus, cachedPages),
		Events:  fundamentus.NewEventsExtractor(cfg.Fundamentus, cachedPages),
		History: yahoo.NewHistoryExtractor(yahooClient),
	}
}

// NewUniverse creates the SymbolUniverse selected by UNIVERSE_POLICY.
func NewUniverse(cfg *config.Config, stockStore usecase.StockStore) (usecase.SymbolUniverse, error) {
	if cfg.Universe.Policy == config.UniverseDirectory {
		client := infrahttp.NewHTTPClient(cfg.TwelveData.Timeout)
		return usecase.NewDirectoryUniverse(twelvedata.NewDirectory(cfg.TwelveData, client)), nil
	}
	symbols, err := cfg.Universe.Symbols()
	if err != nil {
		return nil, err
	}
	return usecase.NewStaticUniverse(symbols, stockStore), nil
}

// NewIngestUsecase wires the whole pipeline.
func NewIngestUsecase(cfg *config.Config, stockStore usecase.StockStore, rdb *redis.Client) (*usecase.IngestUsecase, error) {
	universe, err := NewUniverse(cfg, stockStore)
	if err != nil {
		return nil, err
	}
	return usecase.NewIngestUsecase(universe, NewExtractors(cfg, rdb), stockStore), nil
}
